package display

import (
	"fmt"
	"io"
	"strings"
)

// BarWidth is the character width of a full slice-progress bar
const BarWidth = 40

// Bar renders a fixed-width throughput bar: filled proportionally to
// rate/max, padded with spaces to width. A non-positive max yields an empty
// bar.
func Bar(rate, max float64, width int) string {
	if width <= 0 {
		return ""
	}
	n := 0
	if max > 0 {
		n = int(rate / max * float64(width))
	}
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n) + strings.Repeat(" ", width-n)
}

// SliceLine prints one line of the CPU time series: slice index, the
// percent range of the total duration it covers, a bar of the slice's rate
// relative to the fastest slice seen so far, and the rate itself.
func SliceLine(w io.Writer, idx, total int, rate, maxRate float64) {
	lo := idx * 100 / total
	hi := (idx + 1) * 100 / total
	fmt.Fprintf(w, "    %02d [%02d-%02d%%] %s %d\n", idx+1, lo, hi, Bar(rate, maxRate, BarWidth), int(rate))
}
