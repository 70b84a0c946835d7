package raster

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const barWidth = 20

// ProgressBar returns an Options.Progress callback that redraws a one-line
// bar on w, e.g. "\rRendering [.........           ]  45.00%".
func ProgressBar(w io.Writer) func(float64) {
	return func(done float64) {
		n := int(math.RoundToEven(done * barWidth))
		n = max(0, min(n, barWidth))
		fmt.Fprintf(w, "\rRendering [%s%s] %6.2f%%",
			strings.Repeat(".", n), strings.Repeat(" ", barWidth-n), done*100)
	}
}
