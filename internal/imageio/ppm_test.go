package imageio

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"sphere-tracer/internal/camera"
	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/scene"
)

func TestChannel8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.1, 26},
		{0.5, 128},
		{-3, 0},
		{7, 255},
	}
	for _, tt := range tests {
		if got := Channel8(tt.in); got != tt.want {
			t.Errorf("Channel8(%g) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWritePPM(t *testing.T) {
	img := raster.NewImage(2, 2)
	img.Set(mathutil.V3(1, 0, 0), 0, 0)
	img.Set(mathutil.V3(0, 1, 0), 0, 1)
	img.Set(mathutil.V3(0, 0, 1), 1, 0)
	img.Set(mathutil.V3(2, -1, 0.5), 1, 1)

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatal(err)
	}
	want := "P3\n2 2 255\n255 0 0\n0 255 0\n0 0 255\n255 0 128\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEmptySceneRoundTrip(t *testing.T) {
	sc := scene.New(mathutil.Gray(0.1), mathutil.Gray(0.15))
	const w, h = 13, 7
	img, _ := raster.Render(sc, camera.NewPerspective(math.Pi/2), raster.Options{Width: w, Height: h})

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "13 7 255" {
		t.Errorf("dimension line = %q", lines[1])
	}
	if got := len(lines) - 2; got != w*h {
		t.Errorf("%d pixel lines, want %d", got, w*h)
	}

	back, err := ReadPPM(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := back.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Fatalf("bounds = %v", b)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := back.NRGBAAt(x, y)
			if c.R != 26 || c.G != 26 || c.B != 26 || c.A != 255 {
				t.Fatalf("pixel (%d, %d) = %v, want 26", x, y, c)
			}
		}
	}
}

func TestReadPPMComments(t *testing.T) {
	src := "P3\n# made by hand\n2 1\n# max\n15\n15 0 0 # red\n0 15 15\n"
	img, err := ReadPPM(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if c := img.NRGBAAt(0, 0); c.R != 255 || c.G != 0 {
		t.Errorf("pixel 0 = %v", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 0 || c.G != 255 || c.B != 255 {
		t.Errorf("pixel 1 = %v", c)
	}
}

func TestReadPPMErrors(t *testing.T) {
	tests := []struct {
		name, src string
	}{
		{"empty", ""},
		{"binary magic", "P6\n1 1 255\n"},
		{"truncated pixels", "P3\n2 1 255\n1 2 3\n"},
		{"value above max", "P3\n1 1 255\n256 0 0\n"},
		{"not a number", "P3\n1 x 255\n"},
		{"zero max", "P3\n1 1 0\n"},
		{"huge size", "P3\n4000000000 4000000000 255\n0 0 0\n"},
		{"width over limit", "P3\n32769 1 255\n0 0 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
