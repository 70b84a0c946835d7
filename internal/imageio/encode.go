package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"sphere-tracer/internal/raster"
)

// Output formats understood by Encode and Decode.
const (
	FormatPPM  = "ppm"
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatTGA  = "tga"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// Formats lists every supported format name.
var Formats = []string{FormatPPM, FormatPNG, FormatWebP, FormatTGA, FormatBMP, FormatTIFF}

// FormatOf returns the format implied by a file extension, or "".
func FormatOf(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "tif":
		return FormatTIFF
	case FormatPPM, FormatPNG, FormatWebP, FormatTGA, FormatBMP, FormatTIFF:
		return ext
	}
	return ""
}

// ToNRGBA converts a rendered image to opaque 8-bit pixels.
func ToNRGBA(img *raster.Image) *image.NRGBA {
	width, height := raster.Size(img)
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, c := range img.Data() {
		p := i * 4
		dst.Pix[p], dst.Pix[p+1], dst.Pix[p+2] = RGB8(c)
		dst.Pix[p+3] = 255
	}
	return dst
}

// Encode writes img to w in the named format.
func Encode(w io.Writer, img *raster.Image, format string) error {
	if format == FormatPPM {
		return WritePPM(w, img)
	}

	m := ToNRGBA(img)
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, m)
	case FormatWebP:
		err = nativewebp.Encode(w, m, nil)
	case FormatTGA:
		err = tga.Encode(w, m)
	case FormatBMP:
		err = bmp.Encode(w, m)
	case FormatTIFF:
		err = tiff.Encode(w, m, nil)
	default:
		return fmt.Errorf("imageio: unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}

// Save encodes img into a new file at path.
func Save(path string, img *raster.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Decode reads an image file, choosing the decoder from the extension.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: open %s: %w", path, err)
	}
	defer f.Close()

	var m image.Image
	switch FormatOf(path) {
	case FormatPPM:
		m, err = ReadPPM(f)
	case FormatPNG:
		m, err = png.Decode(f)
	case FormatWebP:
		m, err = webp.Decode(f)
	case FormatTGA:
		m, err = tga.Decode(f)
	case FormatBMP:
		m, err = bmp.Decode(f)
	case FormatTIFF:
		m, err = tiff.Decode(f)
	default:
		return nil, fmt.Errorf("imageio: %s: unknown extension", path)
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}
	return m, nil
}

// Thumbnail scales src so its longer side is maxSide pixels. Images already
// small enough are converted without scaling.
func Thumbnail(src image.Image, maxSide int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxSide || h > maxSide {
		if w >= h {
			h = max(1, h*maxSide/w)
			w = maxSide
		} else {
			w = max(1, w*maxSide/h)
			h = maxSide
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
