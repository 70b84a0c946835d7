package mathutil

import "math"

// Named colors used by the scene presets.
var (
	Black = Gray(0)
	White = Gray(1)
	Red   = V3(1, 0, 0)
	Green = V3(0, 1, 0)
	Blue  = V3(0, 0, 1)
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
