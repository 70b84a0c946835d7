package scene

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"sphere-tracer/internal/geom"
	"sphere-tracer/internal/mathutil"
)

func colorNear(a, b mathutil.Color3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestIntersectNearest(t *testing.T) {
	s := New(mathutil.Black, mathutil.Black)
	s.AddObject(geom.Sphere{Center: mathutil.V3(0, 0, 5), Radius: 1}, Coral)
	s.AddObject(geom.Sphere{Center: mathutil.V3(0, 0, 3), Radius: 1}, Jade)
	s.AddObject(geom.Sphere{Center: mathutil.V3(4, 0, 3), Radius: 1}, Brass)

	obj, tt := s.Intersect(geom.Ray{Origin: mathutil.V3(0, 0, 0), Direction: mathutil.V3(0, 0, 1)})
	if obj != &s.Objects[1] {
		t.Fatalf("hit %v, want second object", obj)
	}
	if want := 2 - Bias; tt != want {
		t.Errorf("t = %.12g, want %.12g", tt, want)
	}
}

func TestIntersectTieKeepsFirst(t *testing.T) {
	s := New(mathutil.Black, mathutil.Black)
	sp := geom.Sphere{Center: mathutil.V3(0, 0, 3), Radius: 1}
	s.AddObject(sp, Coral)
	s.AddObject(sp, Jade)

	obj, _ := s.Intersect(geom.Ray{Origin: mathutil.V3(0, 0, 0), Direction: mathutil.V3(0, 0, 1)})
	if obj != &s.Objects[0] {
		t.Fatal("tie should resolve to the first object")
	}
}

func TestIntersectMiss(t *testing.T) {
	s := New(mathutil.Black, mathutil.Black)
	if obj, _ := s.Intersect(geom.Ray{Direction: mathutil.V3(0, 0, 1)}); obj != nil {
		t.Fatal("empty scene reported a hit")
	}
	s.AddObject(geom.Sphere{Center: mathutil.V3(0, 0, -3), Radius: 1}, Coral)
	if obj, _ := s.Intersect(geom.Ray{Direction: mathutil.V3(0, 0, 1)}); obj != nil {
		t.Fatal("sphere behind the origin reported a hit")
	}
}

func TestInShadow(t *testing.T) {
	up := geom.Ray{Origin: mathutil.V3(0, 0, 0), Direction: mathutil.V3(0, 0, 1)}
	toLight := mathutil.V3(0, 0, 10)

	tests := []struct {
		name   string
		center mathutil.Position3
		want   bool
	}{
		{"between point and light", mathutil.V3(0, 0, 5), true},
		{"beyond the light", mathutil.V3(0, 0, 20), false},
		{"behind the point", mathutil.V3(0, 0, -5), false},
		{"off to the side", mathutil.V3(3, 0, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(mathutil.Black, mathutil.Black)
			s.AddObject(geom.Sphere{Center: tt.center, Radius: 1}, Coral)
			if got := s.InShadow(up, toLight); got != tt.want {
				t.Errorf("InShadow = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInShadowOccluderAtLightDistance(t *testing.T) {
	s := New(mathutil.Black, mathutil.Black)
	// Near surface at raw t=4, so the biased distance is 4-Bias.
	s.AddObject(geom.Sphere{Center: mathutil.V3(0, 0, 5), Radius: 1}, Coral)
	up := geom.Ray{Origin: mathutil.V3(0, 0, 0), Direction: mathutil.V3(0, 0, 1)}

	if s.InShadow(up, mathutil.V3(0, 0, 4-Bias)) {
		t.Error("occluder at exactly the light distance must not shadow")
	}
	if !s.InShadow(up, mathutil.V3(0, 0, 4)) {
		t.Error("occluder just short of the light must shadow")
	}
}

func TestLightingAmbientOnly(t *testing.T) {
	s := New(mathutil.Black, mathutil.Gray(0.15))
	s.AddLight(mathutil.V3(0, 5, 0), LightProp{
		Ambient:  mathutil.Gray(0.2),
		Diffuse:  mathutil.Gray(0.9),
		Specular: mathutil.Gray(0.9),
	})
	mat := Material{Ambient: mathutil.V3(0.2, 0.4, 0.6), Shininess: 20}
	want := mathutil.V3(0.07, 0.14, 0.21)

	normals := []mathutil.Vector3{
		mathutil.V3(0, 1, 0),
		mathutil.V3(0, -1, 0),
		mathutil.Normalize(mathutil.V3(1, 1, 1)),
	}
	for _, n := range normals {
		got := s.Lighting(mathutil.V3(0, 0, 0), n, mathutil.V3(0, 0, 1), mat)
		if !colorNear(got, want, 1e-12) {
			t.Errorf("normal %v: Lighting = %v, want %v", n, got, want)
		}
	}
}

func TestLightingTerms(t *testing.T) {
	s := New(mathutil.Black, mathutil.Gray(0.1))
	s.AddLight(mathutil.V3(0, 0, 10), LightProp{
		Ambient:  mathutil.Gray(0.1),
		Diffuse:  mathutil.Gray(0.5),
		Specular: mathutil.Gray(1),
	})
	mat := Material{
		Ambient:   mathutil.Gray(0.1),
		Diffuse:   mathutil.Gray(0.4),
		Specular:  mathutil.Gray(0.3),
		Shininess: 10,
	}
	p := mathutil.V3(0, 0, 0)
	view := mathutil.V3(0, 0, -1)

	tests := []struct {
		name   string
		normal mathutil.Vector3
		mat    func(Material) Material
		want   float64
	}{
		{"all terms", mathutil.V3(0, 0, 1), nil, 0.01 + 0.01 + 0.2 + 0.3},
		{"shininess zero drops specular", mathutil.V3(0, 0, 1), func(m Material) Material {
			m.Shininess = 0
			return m
		}, 0.01 + 0.01 + 0.2},
		{"facing away keeps ambient", mathutil.V3(0, 0, -1), nil, 0.01 + 0.01},
		{"clamped to one", mathutil.V3(0, 0, 1), func(m Material) Material {
			m.Diffuse = mathutil.Gray(5)
			return m
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mat
			if tt.mat != nil {
				m = tt.mat(m)
			}
			got := s.Lighting(p, tt.normal, view, m)
			if !colorNear(got, mathutil.Gray(tt.want), 1e-12) {
				t.Errorf("Lighting = %v, want %g", got, tt.want)
			}
		})
	}
}

func TestLightingShadowLeavesSceneAmbient(t *testing.T) {
	s := New(mathutil.Black, mathutil.Gray(0.15))
	s.AddLight(mathutil.V3(0, 0, 10), WhiteLight)
	p := mathutil.V3(0, 0, 0)
	n := mathutil.V3(0, 0, 1)
	view := mathutil.V3(0, 0, -1)

	lit := s.Lighting(p, n, view, Coral)
	onlyAmbient := mathutil.Mul(s.Ambience, Coral.Ambient)
	if colorNear(lit, onlyAmbient, 1e-6) {
		t.Fatal("unoccluded point should receive more than scene ambience")
	}

	s.AddObject(geom.Sphere{Center: mathutil.V3(0, 0, 5), Radius: 1}, Jade)
	shadowed := s.Lighting(p, n, view, Coral)
	if !colorNear(shadowed, onlyAmbient, 1e-12) {
		t.Errorf("shadowed = %v, want %v", shadowed, onlyAmbient)
	}
}

func TestCast(t *testing.T) {
	bg := mathutil.V3(0.1, 0.2, 0.3)
	s := New(bg, mathutil.Gray(0.15))
	s.AddObject(geom.Sphere{Center: mathutil.V3(0, 0, 3), Radius: 1}, Coral)
	s.AddLight(mathutil.V3(0, 0, 0), WhiteLight)

	if got := s.Cast(geom.Ray{Direction: mathutil.V3(0, 1, 0)}); got != bg {
		t.Errorf("miss = %v, want background %v", got, bg)
	}

	got := s.Cast(geom.Ray{Direction: mathutil.V3(0, 0, 1)})
	ambient := r3.Add(mathutil.Mul(s.Ambience, Coral.Ambient), mathutil.Mul(WhiteLight.Ambient, Coral.Ambient))
	if got.X <= ambient.X || got.Y <= ambient.Y || got.Z <= ambient.Z {
		t.Errorf("hit = %v, want diffuse above ambient %v", got, ambient)
	}
}

func TestCastBackgroundNotClamped(t *testing.T) {
	bg := mathutil.V3(1.5, -0.5, 0.5)
	s := New(bg, mathutil.Black)
	if got := s.Cast(geom.Ray{Direction: mathutil.V3(0, 0, 1)}); got != bg {
		t.Errorf("Cast = %v, want %v", got, bg)
	}
}
