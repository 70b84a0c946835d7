package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"sphere-tracer/internal/mathutil"
)

// Sphere is immutable once built. Radius must be > 0.
type Sphere struct {
	Center mathutil.Position3
	Radius float64
}

// Normal returns the outward normal at a surface point p. It is unit length
// only when p lies exactly on the surface.
func (s Sphere) Normal(p mathutil.Position3) mathutil.Vector3 {
	return r3.Scale(1/s.Radius, r3.Sub(p, s.Center))
}

// SolveQuadratic solves a*x² + b*x + c = 0 without catastrophic cancellation.
// A tangent (zero discriminant) returns the same root twice.
func SolveQuadratic(a, b, c float64) (x0, x1 float64, ok bool) {
	discr := b*b - 4*a*c
	switch {
	case discr < 0:
		return 0, 0, false
	case discr == 0:
		x := -0.5 * b / a
		return x, x, true
	}
	var q float64
	if b > 0 {
		q = -0.5 * (b + math.Sqrt(discr))
	} else {
		q = -0.5 * (b - math.Sqrt(discr))
	}
	return q / a, c / q, true
}

// Intersect returns the nearest strictly positive ray parameter where ray
// meets s. A sphere entirely behind the origin is a miss. The returned t is in
// units of ray.Direction, so the hit point is the same for any direction scale.
//
// A zero-length direction gives undefined results.
func Intersect(ray Ray, s Sphere) (float64, bool) {
	l := r3.Sub(ray.Origin, s.Center)
	a := mathutil.LenSq(ray.Direction)
	b := 2 * r3.Dot(ray.Direction, l)
	c := mathutil.LenSq(l) - s.Radius*s.Radius

	t0, t1, ok := SolveQuadratic(a, b, c)
	if !ok {
		return 0, false
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	switch {
	case t0 > 0:
		return t0, true
	case t1 > 0:
		return t1, true
	}
	return 0, false
}
