package bbp

import (
	"github.com/calebcase/hexpi/series"
	"github.com/calebcase/hexpi/window"
)

// Guard is the number of integer bits carried by the window at offset zero.
const Guard = 2

// Compute returns width hexadecimal digits of π starting offset digits after
// the point.
func Compute(offset, width int) window.Window {
	w := window.Window{
		Offset: offset,
		Width:  width,
		Slack:  4 * series.Bound(offset, width),
	}

	if offset == 0 {
		w.Guard = Guard
	}

	mask := w.Mask()

	s0 := series.Sum(series.T1, offset, width, mask)
	s1 := series.Sum(series.T4, offset, width, mask)
	s2 := series.Sum(series.T5, offset, width, mask)
	s3 := series.Sum(series.T6, offset, width, mask)

	s0.Lsh(s0, 2)
	s1.Lsh(s1, 1)

	result := s0.Sub(s0, s1)
	result.Sub(result, s2)
	result.Sub(result, s3)
	result.And(result, mask)

	w.Value = result

	return w
}
