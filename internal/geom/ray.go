// Package geom holds the ray and sphere primitives and their intersection test.
package geom

import (
	"gonum.org/v1/gonum/spatial/r3"

	"sphere-tracer/internal/mathutil"
)

// Ray is a half-line. Direction need not be unit length; callers normalize
// where distances matter.
type Ray struct {
	Origin    mathutil.Position3
	Direction mathutil.Vector3
}

// At returns Origin + Direction*t.
func (r Ray) At(t float64) mathutil.Position3 {
	return r3.Add(r.Origin, r3.Scale(t, r.Direction))
}
