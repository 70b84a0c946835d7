package main

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sphere-tracer/internal/imageio"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect IMAGE...")
		os.Exit(2)
	}

	p := message.NewPrinter(language.English)
	failed := false
	for _, path := range os.Args[1:] {
		m, err := imageio.Decode(path)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
			continue
		}
		s := imageio.Summarize(m)
		fmt.Printf("%s (%s)\n", path, imageio.FormatOf(path))
		p.Printf("  Size: %d x %d (%d pixels)\n", s.Width, s.Height, s.Width*s.Height)
		fmt.Printf("  Min:  R=%d G=%d B=%d\n", s.Min[0], s.Min[1], s.Min[2])
		fmt.Printf("  Max:  R=%d G=%d B=%d\n", s.Max[0], s.Max[1], s.Max[2])
		fmt.Printf("  Mean: R=%.1f G=%.1f B=%.1f\n", s.Mean[0], s.Mean[1], s.Mean[2])
		p.Printf("  Colors: %d distinct\n", s.Distinct)
		if s.DominantCount > 0 {
			share := 100 * float64(s.DominantCount) / float64(s.Width*s.Height)
			fmt.Printf("  Dominant: %d %d %d (%.1f%%)\n", s.Dominant.R, s.Dominant.G, s.Dominant.B, share)
		}
	}
	if failed {
		os.Exit(1)
	}
}
