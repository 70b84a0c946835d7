package scene

import (
	"strings"
	"testing"
)

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			s, err := Preset(name)
			if err != nil {
				t.Fatal(err)
			}
			if len(s.Objects) == 0 || len(s.Lights) == 0 {
				t.Fatalf("preset %s: %d objects, %d lights", name, len(s.Objects), len(s.Lights))
			}
			for i, o := range s.Objects {
				if o.Geom.Radius <= 0 {
					t.Errorf("object %d: radius %g", i, o.Geom.Radius)
				}
			}
		})
	}
}

func TestPresetIsFreshCopy(t *testing.T) {
	a, _ := Preset(DefaultPreset)
	b, _ := Preset(DefaultPreset)
	a.Objects[0].Geom.Radius = 42
	if b.Objects[0].Geom.Radius == 42 {
		t.Fatal("presets share object storage")
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("nope")
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("err = %v", err)
	}
}
