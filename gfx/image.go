package gfx

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// Image is anything a renderer can blit.
type Image interface {
	Size() (w, h int)
}

// Quad is a sub-rectangle of an image, e.g. one cell of a sprite sheet.
type Quad struct {
	Image Image
	Src   image.Rectangle
}

// NewQuad cuts the w×h rectangle at x, y out of img.
func NewQuad(img Image, x, y, w, h int) Quad {
	return Quad{Image: img, Src: image.Rect(x, y, x+w, y+h)}
}

func (q Quad) Size() (w, h int) {
	return q.Src.Dx(), q.Src.Dy()
}

// Quads slices a sheet into frames of w×h, row by row.
func Quads(sheet Image, w, h int) []Quad {
	sw, sh := sheet.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	var quads []Quad
	for y := 0; y+h <= sh; y += h {
		for x := 0; x+w <= sw; x += w {
			quads = append(quads, NewQuad(sheet, x, y, w, h))
		}
	}
	return quads
}

// Texture is an image known only by its path and dimensions.
type Texture struct {
	Path   string
	Width  int
	Height int
}

func (t *Texture) Size() (w, h int) {
	return t.Width, t.Height
}

// DecodeFile reads and decodes an image file. PNG, JPEG and BMP are
// supported.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadTexture, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadTexture, path, err)
	}
	return img, nil
}

// DecodeConfigFile reads only the image header.
func DecodeConfigFile(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w %s: %w", ErrLoadTexture, path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w %s: %w", ErrLoadTexture, path, err)
	}
	return cfg, nil
}

// Unwrapper is implemented by images that stand in for another one, such as
// a hot-reloadable texture. Backends draw the unwrapped image.
type Unwrapper interface {
	Unwrap() Image
}
