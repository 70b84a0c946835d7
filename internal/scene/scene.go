// Package scene holds the renderable world: spheres paired with materials,
// point lights, and the shading that turns a camera ray into a color.
package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"sphere-tracer/internal/geom"
	"sphere-tracer/internal/mathutil"
)

// Bias is subtracted from every raw hit distance so shading and shadow rays
// do not re-hit the surface they start on.
const Bias = 0.000001

// Material describes how a surface responds to light. Shininess 0 disables
// the specular term.
type Material struct {
	Ambient   mathutil.Color3
	Diffuse   mathutil.Color3
	Specular  mathutil.Color3
	Shininess float64
}

// Object pairs one sphere with its material.
type Object struct {
	Geom geom.Sphere
	Mat  Material
}

// LightProp is the per-light color contribution for each Phong term.
type LightProp struct {
	Ambient  mathutil.Color3
	Diffuse  mathutil.Color3
	Specular mathutil.Color3
}

// Light is a point light without attenuation.
type Light struct {
	Pos  mathutil.Position3
	Prop LightProp
}

// Scene is built once, then only read while rendering, so a single Scene may
// be shared by any number of render workers.
type Scene struct {
	Background mathutil.Color3
	Ambience   mathutil.Color3
	Objects    []Object
	Lights     []Light
}

// New returns an empty scene.
func New(bg, ambience mathutil.Color3) *Scene {
	return &Scene{Background: bg, Ambience: ambience}
}

// AddObject appends a sphere with the given material.
func (s *Scene) AddObject(sp geom.Sphere, mat Material) {
	s.Objects = append(s.Objects, Object{Geom: sp, Mat: mat})
}

// AddLight appends a point light.
func (s *Scene) AddLight(pos mathutil.Position3, prop LightProp) {
	s.Lights = append(s.Lights, Light{Pos: pos, Prop: prop})
}

// Intersect returns the object nearest along ray and its biased distance, or
// nil when nothing is hit. A candidate replaces the current best only when its
// raw distance is strictly less than the stored biased one, so the earlier
// object wins ties.
func (s *Scene) Intersect(ray geom.Ray) (*Object, float64) {
	var (
		hit *Object
		t   float64
	)
	for i := range s.Objects {
		tt, ok := geom.Intersect(ray, s.Objects[i].Geom)
		if !ok {
			continue
		}
		if hit == nil || tt < t {
			t = tt - Bias
			hit = &s.Objects[i]
		}
	}
	return hit, t
}

// InShadow reports whether any object lies between rayLight.Origin and the
// light. rayLight.Direction must be unit length; l is the unnormalized vector
// from the shading point to the light. An occluder exactly at the light's
// distance does not count.
func (s *Scene) InShadow(rayLight geom.Ray, l mathutil.Vector3) bool {
	ll := mathutil.LenSq(l)
	for i := range s.Objects {
		tt, ok := geom.Intersect(rayLight, s.Objects[i].Geom)
		if !ok {
			continue
		}
		tt -= Bias
		if tt*tt < ll {
			return true
		}
	}
	return false
}

// Lighting evaluates ambient, diffuse and specular terms at incidence.
//
// The scene ambience is always added. Each light's own ambient term is added
// only when the light is visible from incidence, so occluded lights contribute
// nothing at all.
func (s *Scene) Lighting(incidence mathutil.Position3, normal, rayDirection mathutil.Vector3, mat Material) mathutil.Color3 {
	ambient := mathutil.Mul(s.Ambience, mat.Ambient)
	var diffuse, specular mathutil.Color3

	for _, light := range s.Lights {
		l := r3.Sub(light.Pos, incidence)
		rayLight := geom.Ray{Origin: incidence, Direction: mathutil.Normalize(l)}
		if s.InShadow(rayLight, l) {
			continue
		}

		ambient = r3.Add(ambient, mathutil.Mul(light.Prop.Ambient, mat.Ambient))

		diff := r3.Dot(rayLight.Direction, normal)
		if diff <= 0 {
			continue
		}
		diffuse = r3.Add(diffuse, mathutil.Mul(r3.Scale(diff, light.Prop.Diffuse), mat.Diffuse))

		if mat.Shininess <= 0 {
			continue
		}
		reflect := mathutil.Reflect(r3.Scale(-1, rayLight.Direction), normal)
		view := r3.Scale(-1, rayDirection)
		if specA := r3.Dot(reflect, view); specA > 0 {
			specB := math.Pow(specA, mat.Shininess)
			specular = r3.Add(specular, mathutil.Mul(r3.Scale(specB, light.Prop.Specular), mat.Specular))
		}
	}

	return mathutil.Clamp(r3.Add(r3.Add(ambient, diffuse), specular), 0, 1)
}

// Cast returns the color seen along ray: the background on a miss, otherwise
// the local shading at the nearest hit. There is no secondary bounce.
func (s *Scene) Cast(ray geom.Ray) mathutil.Color3 {
	obj, t := s.Intersect(ray)
	if obj == nil {
		return s.Background
	}
	incidence := ray.At(t)
	n := mathutil.Normalize(obj.Geom.Normal(incidence))
	return s.Lighting(incidence, n, ray.Direction, obj.Mat)
}
