// Package imageio converts rendered color buffers to and from image files.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math"
	"strconv"

	"sphere-tracer/internal/mathutil"
	"sphere-tracer/internal/raster"
)

// MaxValue is the channel maximum written to PPM headers.
const MaxValue = 255

// MaxDimension bounds the width and height ReadPPM accepts.
const MaxDimension = 1 << 15

// Channel8 clamps c to [0, 1] and scales it to 0..255, rounding half to even.
func Channel8(c float64) uint8 {
	c = math.Min(math.Max(c, 0), 1)
	return uint8(math.RoundToEven(c * MaxValue))
}

// RGB8 converts a color to 8-bit channels.
func RGB8(c mathutil.Color3) (r, g, b uint8) {
	return Channel8(c.X), Channel8(c.Y), Channel8(c.Z)
}

// WritePPM writes img as a plain-text PPM: "P3", then "width height 255",
// then one "R G B" line per pixel, rows top to bottom.
func WritePPM(w io.Writer, img *raster.Image) error {
	width, height := raster.Size(img)
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d %d\n", width, height, MaxValue)
	for _, c := range img.Data() {
		r, g, b := RGB8(c)
		fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("imageio: write ppm: %w", err)
	}
	return nil
}

// ReadPPM parses a plain-text (P3) PPM. Comments starting with '#' are
// skipped and channels are rescaled when the file's maximum is not 255.
func ReadPPM(r io.Reader) (*image.NRGBA, error) {
	tr := &tokenReader{r: bufio.NewReader(r)}

	magic, err := tr.next()
	if err != nil {
		return nil, fmt.Errorf("imageio: read ppm header: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("imageio: unsupported ppm magic %q", magic)
	}

	var hdr [3]int
	for i := range hdr {
		if hdr[i], err = tr.nextInt(); err != nil {
			return nil, fmt.Errorf("imageio: read ppm header: %w", err)
		}
	}
	width, height, maxVal := hdr[0], hdr[1], hdr[2]
	if width < 0 || height < 0 || maxVal <= 0 || maxVal > 65535 {
		return nil, fmt.Errorf("imageio: bad ppm header %d %d %d", width, height, maxVal)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("imageio: ppm size %dx%d exceeds %d", width, height, MaxDimension)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := img.PixOffset(x, y)
			for k := 0; k < 3; k++ {
				v, err := tr.nextInt()
				if err != nil {
					return nil, fmt.Errorf("imageio: ppm pixel (%d, %d): %w", x, y, err)
				}
				if v < 0 || v > maxVal {
					return nil, fmt.Errorf("imageio: ppm pixel (%d, %d): value %d exceeds %d", x, y, v, maxVal)
				}
				img.Pix[i+k] = uint8((v*MaxValue + maxVal/2) / maxVal)
			}
			img.Pix[i+3] = 255
		}
	}
	return img, nil
}

type tokenReader struct {
	r *bufio.Reader
}

func (t *tokenReader) next() (string, error) {
	var tok []byte
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF && len(tok) > 0 {
			return string(tok), nil
		}
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := t.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func (t *tokenReader) nextInt() (int, error) {
	s, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}
