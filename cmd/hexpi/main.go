package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/calebcase/hexpi"
	"github.com/calebcase/hexpi/bbp"
	"github.com/calebcase/hexpi/decimal"
)

// config is bound to the command line flags and HEXPI_* environment
// variables.
var config = viper.New()

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hexpi",
		Short:         "Extract hexadecimal digits of π",
		Long:          "Compute a block of hexadecimal digits of π with the Bailey-Borwein-Plouffe formula and print its exact decimal value",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bind(cmd)
		},
		RunE: run,
	}

	flags := rootCmd.Flags()
	flags.IntP("digits", "n", 256, "Number of hexadecimal digits")
	flags.IntP("offset", "o", 0, "Offset of the first digit after the point")
	flags.IntP("width", "w", bbp.DefaultWidth, "Digits computed per window")
	flags.IntP("step", "s", bbp.DefaultStep, "Digits kept per window")
	flags.IntP("workers", "j", 0, "Windows computed concurrently (0 for GOMAXPROCS)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging to stderr")

	convertCmd := &cobra.Command{
		Use:   "convert HEX...",
		Short: "Print the exact decimal value of hexadecimal numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE:  convert,
	}
	convertCmd.Flags().Bool("lenient", false, "Skip malformed digits instead of failing")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hexpi version %s\n", hexpi.Version)
		},
	}

	rootCmd.AddCommand(convertCmd, versionCmd)

	return rootCmd
}

func bind(cmd *cobra.Command) (err error) {
	config.SetEnvPrefix("hexpi")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		err = config.BindPFlags(fs)
		if err != nil {
			return err
		}
	}

	return nil
}

func newLogger() (*zap.Logger, error) {
	if !config.GetBool("verbose") {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

func run(cmd *cobra.Command, args []string) (err error) {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := hexpi.Run(cmd.Context(), hexpi.Options{
		Start:   config.GetInt("offset"),
		Digits:  config.GetInt("digits"),
		Width:   config.GetInt("width"),
		Step:    config.GetInt("step"),
		Workers: config.GetInt("workers"),
		Logger:  log,
	})
	if err != nil {
		return err
	}

	report(cmd.OutOrStdout(), res)

	return nil
}

func report(out io.Writer, res *hexpi.Result) {
	if res.Verified {
		color.New(color.FgGreen).Fprintln(out, "Pi verified!")
	}

	if res.Digits.Integer != nil && !res.Agrees {
		color.New(color.FgYellow).Fprintf(out, "Warning: digits disagree with %s\n", res.Reference)
	}

	fmt.Fprintf(out, "HEX:%s\n", res.Hex)

	if res.Decimal != "" {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "DEC:%s\n", res.Decimal)
	}
}

func convert(cmd *cobra.Command, args []string) (err error) {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		var b decimal.Block

		if config.GetBool("lenient") {
			b = decimal.ParseHexLenient(arg)
		} else {
			b, err = decimal.ParseHex(arg)
			if err != nil {
				return err
			}
		}

		text, err := b.MarshalText()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s\n", text)
	}

	return nil
}
