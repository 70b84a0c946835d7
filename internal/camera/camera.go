// Package camera maps normalized image-plane coordinates to primary rays.
package camera

import (
	"fmt"
	"math"

	"sphere-tracer/internal/geom"
	"sphere-tracer/internal/mathutil"
)

// Camera generates the ray through image-plane point (u, v). u spans roughly
// [-aspect, aspect] and v spans [-1, 1].
type Camera interface {
	Ray(u, v float64) geom.Ray
}

// Ortho is a parallel projection looking down +Z.
type Ortho struct{}

// Ray starts at (u, v, 0) and points along +Z.
func (Ortho) Ray(u, v float64) geom.Ray {
	return geom.Ray{
		Origin:    mathutil.V3(u, v, 0),
		Direction: mathutil.Normalize(mathutil.V3(0, 0, 1)),
	}
}

// Perspective is a pinhole camera at the origin looking down +Z.
type Perspective struct {
	fovFactor float64
}

// NewPerspective builds a pinhole camera with the given full field of view
// in radians.
func NewPerspective(fov float64) Perspective {
	return Perspective{fovFactor: 1 / math.Tan(fov/2)}
}

// Ray starts at the origin and passes through (u, v, 1/tan(fov/2)).
func (p Perspective) Ray(u, v float64) geom.Ray {
	return geom.Ray{
		Origin:    mathutil.V3(0, 0, 0),
		Direction: mathutil.Normalize(mathutil.V3(u, v, p.fovFactor)),
	}
}

// Kind names accepted by New.
const (
	KindPerspective = "perspective"
	KindOrtho       = "ortho"
)

// New returns the camera named by kind. fovDeg is only used for perspective.
func New(kind string, fovDeg float64) (Camera, error) {
	switch kind {
	case KindPerspective, "":
		if fovDeg <= 0 || fovDeg >= 180 {
			return nil, fmt.Errorf("camera: fov %g out of range (0, 180)", fovDeg)
		}
		return NewPerspective(mathutil.Deg2Rad(fovDeg)), nil
	case KindOrtho, "orthographic":
		return Ortho{}, nil
	}
	return nil, fmt.Errorf("camera: unknown kind %q", kind)
}
