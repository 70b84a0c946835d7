package imageio

import (
	"image"
	"image/color"
)

// Summary describes the pixel content of an image. Dominant is the most
// frequent color, which on a render is usually the background.
type Summary struct {
	Width, Height int
	Min, Max      [3]uint8
	Mean          [3]float64
	Distinct      int
	Dominant      color.NRGBA
	DominantCount int
}

// Summarize computes per-channel statistics over every pixel of m.
func Summarize(m image.Image) Summary {
	b := m.Bounds()
	s := Summary{
		Width:  b.Dx(),
		Height: b.Dy(),
		Min:    [3]uint8{255, 255, 255},
	}
	if s.Width == 0 || s.Height == 0 {
		s.Min = [3]uint8{}
		return s
	}

	var sum [3]float64
	counts := make(map[color.NRGBA]int)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			ch := [3]uint8{c.R, c.G, c.B}
			for k, v := range ch {
				s.Min[k] = min(s.Min[k], v)
				s.Max[k] = max(s.Max[k], v)
				sum[k] += float64(v)
			}
			counts[c]++
		}
	}

	n := float64(s.Width * s.Height)
	for k := range sum {
		s.Mean[k] = sum[k] / n
	}
	s.Distinct = len(counts)
	for c, k := range counts {
		if k > s.DominantCount || (k == s.DominantCount && lessNRGBA(c, s.Dominant)) {
			s.Dominant, s.DominantCount = c, k
		}
	}
	return s
}

func lessNRGBA(a, b color.NRGBA) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	if a.G != b.G {
		return a.G < b.G
	}
	return a.B < b.B
}
