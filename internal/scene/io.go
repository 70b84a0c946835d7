package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"sphere-tracer/internal/geom"
	"sphere-tracer/internal/mathutil"
)

// File layout of a scene description. Vectors and colors are [x, y, z].
type (
	fileVec [3]float64

	fileMaterial struct {
		Ambient   fileVec `json:"ambient"`
		Diffuse   fileVec `json:"diffuse"`
		Specular  fileVec `json:"specular"`
		Shininess float64 `json:"shininess"`
	}

	fileObject struct {
		Center fileVec `json:"center"`
		Radius float64 `json:"radius"`
		// Either a name from the file's or the built-in material table,
		// or an inline material.
		Material string        `json:"material,omitempty"`
		Mat      *fileMaterial `json:"mat,omitempty"`
	}

	fileLight struct {
		Pos      fileVec `json:"pos"`
		Ambient  fileVec `json:"ambient"`
		Diffuse  fileVec `json:"diffuse"`
		Specular fileVec `json:"specular"`
	}

	fileScene struct {
		Background fileVec                 `json:"background"`
		Ambience   fileVec                 `json:"ambience"`
		Materials  map[string]fileMaterial `json:"materials,omitempty"`
		Objects    []fileObject            `json:"objects"`
		Lights     []fileLight             `json:"lights"`
	}
)

func (v fileVec) vec() mathutil.Vector3 { return mathutil.V3(v[0], v[1], v[2]) }

func toFileVec(v mathutil.Vector3) fileVec { return fileVec{v.X, v.Y, v.Z} }

func (m fileMaterial) material() Material {
	return Material{
		Ambient:   m.Ambient.vec(),
		Diffuse:   m.Diffuse.vec(),
		Specular:  m.Specular.vec(),
		Shininess: m.Shininess,
	}
}

func toFileMaterial(m Material) *fileMaterial {
	return &fileMaterial{
		Ambient:   toFileVec(m.Ambient),
		Diffuse:   toFileVec(m.Diffuse),
		Specular:  toFileVec(m.Specular),
		Shininess: m.Shininess,
	}
}

// Load reads a JSON scene description. Geometry is not validated beyond
// resolving material names.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var fs fileScene
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}

	sc := New(fs.Background.vec(), fs.Ambience.vec())
	for i, o := range fs.Objects {
		var mat Material
		switch {
		case o.Mat != nil:
			mat = o.Mat.material()
		case o.Material != "":
			if fm, ok := fs.Materials[o.Material]; ok {
				mat = fm.material()
			} else if m, ok := Materials[o.Material]; ok {
				mat = m
			} else {
				return nil, fmt.Errorf("scene: %s: object %d: unknown material %q", path, i, o.Material)
			}
		default:
			return nil, fmt.Errorf("scene: %s: object %d: no material", path, i)
		}
		sc.AddObject(geom.Sphere{Center: o.Center.vec(), Radius: o.Radius}, mat)
	}
	for _, l := range fs.Lights {
		sc.AddLight(l.Pos.vec(), LightProp{
			Ambient:  l.Ambient.vec(),
			Diffuse:  l.Diffuse.vec(),
			Specular: l.Specular.vec(),
		})
	}
	return sc, nil
}

// Write encodes sc as an indented JSON scene description with inline
// materials.
func Write(w io.Writer, sc *Scene) error {
	fs := fileScene{
		Background: toFileVec(sc.Background),
		Ambience:   toFileVec(sc.Ambience),
		Objects:    make([]fileObject, 0, len(sc.Objects)),
		Lights:     make([]fileLight, 0, len(sc.Lights)),
	}
	for _, o := range sc.Objects {
		fs.Objects = append(fs.Objects, fileObject{
			Center: toFileVec(o.Geom.Center),
			Radius: o.Geom.Radius,
			Mat:    toFileMaterial(o.Mat),
		})
	}
	for _, l := range sc.Lights {
		fs.Lights = append(fs.Lights, fileLight{
			Pos:      toFileVec(l.Pos),
			Ambient:  toFileVec(l.Prop.Ambient),
			Diffuse:  toFileVec(l.Prop.Diffuse),
			Specular: toFileVec(l.Prop.Specular),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fs); err != nil {
		return fmt.Errorf("scene: encode: %w", err)
	}
	return nil
}

// Save writes sc to a JSON file.
func Save(path string, sc *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	if err := Write(f, sc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
