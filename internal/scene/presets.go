package scene

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"sphere-tracer/internal/geom"
	"sphere-tracer/internal/mathutil"
)

// Material table, values from the classic OpenGL material charts.
var (
	RedPlastic = Material{
		Ambient:   r3.Scale(0.2, mathutil.Red),
		Diffuse:   r3.Scale(0.4, mathutil.Red),
		Specular:  r3.Scale(0.9, mathutil.White),
		Shininess: 30,
	}
	Coral = Material{
		Ambient:   mathutil.V3(1.0, 0.5, 0.31),
		Diffuse:   mathutil.V3(1.0, 0.5, 0.31),
		Specular:  mathutil.V3(0.5, 0.5, 0.5),
		Shininess: 32,
	}
	Brass = Material{
		Ambient:   mathutil.V3(0.329412, 0.223529, 0.027451),
		Diffuse:   mathutil.V3(0.780392, 0.568627, 0.113725),
		Specular:  mathutil.V3(0.992157, 0.941176, 0.807843),
		Shininess: 27.8974,
	}
	Jade = Material{
		Ambient:   mathutil.V3(0.135, 0.2225, 0.1575),
		Diffuse:   mathutil.V3(0.54, 0.89, 0.63),
		Specular:  mathutil.V3(0.316228, 0.316228, 0.316228),
		Shininess: 12.8,
	}

	WhiteLight = LightProp{
		Ambient:  r3.Scale(0.2, mathutil.White),
		Diffuse:  r3.Scale(0.5, mathutil.White),
		Specular: mathutil.White,
	}
)

// Materials maps the names usable from scene files to the table above.
var Materials = map[string]Material{
	"red_plastic": RedPlastic,
	"coral":       Coral,
	"brass":       Brass,
	"jade":        Jade,
}

// DefaultPreset is rendered when no scene is named.
const DefaultPreset = "pair"

// Presets builds each named demo scene. Every call returns a fresh Scene.
var Presets = map[string]func() *Scene{
	"single":  singleScene,
	"pair":    pairScene,
	"distant": distantScene,
}

func base() *Scene {
	return New(r3.Scale(0.1, mathutil.White), r3.Scale(0.15, mathutil.White))
}

// singleScene: one coral sphere lit from the right.
func singleScene() *Scene {
	s := base()
	s.AddObject(geom.Sphere{Center: mathutil.V3(-0.3, 0, 3), Radius: 0.7}, Coral)
	s.AddLight(mathutil.V3(1.5, 0, 1.5), WhiteLight)
	return s
}

// pairScene: a small jade sphere casting a shadow onto a large brass one.
func pairScene() *Scene {
	s := base()
	s.AddObject(geom.Sphere{Center: mathutil.V3(-0.3, 0, 1.5), Radius: 0.7}, Brass)
	s.AddObject(geom.Sphere{Center: mathutil.V3(0.5, 0, 0.7), Radius: 0.2}, Jade)
	s.AddLight(mathutil.V3(1.5, 0, 0), WhiteLight)
	return s
}

// distantScene: two small spheres at different depths lit from above.
func distantScene() *Scene {
	s := base()
	s.AddObject(geom.Sphere{Center: mathutil.V3(0.3, 0, 3), Radius: 0.2}, RedPlastic)
	s.AddObject(geom.Sphere{Center: mathutil.V3(-0.3, 0, 1), Radius: 0.2}, RedPlastic)
	s.AddLight(mathutil.V3(0, 1, 1), WhiteLight)
	return s
}

// Preset returns a new copy of the named demo scene.
func Preset(name string) (*Scene, error) {
	build, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown preset %q (have %v)", name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
