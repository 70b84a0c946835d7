package mathutil

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Position3, Vector3 and Color3 share one representation. Positions are
// translated by transforms, directions are not; colors may leave [0,1]
// until Clamp is applied.
type (
	Position3 = r3.Vec
	Vector3   = r3.Vec
	Color3    = r3.Vec
)

// V3 builds a vector from its components.
func V3(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// Gray returns a color with all three channels set to s.
func Gray(s float64) Color3 {
	return Color3{X: s, Y: s, Z: s}
}

// Mul returns the component-wise product a*b.
func Mul(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// LenSq returns v·v.
func LenSq(v r3.Vec) float64 {
	return r3.Dot(v, v)
}

// Normalize returns v scaled to unit length. A zero vector yields NaN
// components.
func Normalize(v r3.Vec) r3.Vec {
	return r3.Unit(v)
}

// Reflect mirrors the incident direction i about the normal n (n unit length).
func Reflect(i, n r3.Vec) r3.Vec {
	return r3.Sub(i, r3.Scale(2*r3.Dot(n, i), n))
}

// Clamp limits every component of v to [lo, hi].
func Clamp(v r3.Vec, lo, hi float64) r3.Vec {
	return r3.Vec{
		X: math.Min(math.Max(v.X, lo), hi),
		Y: math.Min(math.Max(v.Y, lo), hi),
		Z: math.Min(math.Max(v.Z, lo), hi),
	}
}
