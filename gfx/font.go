package gfx

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Font is a loaded face at a fixed point size.
type Font interface {
	Name() string
	Size() float64
	Face() font.Face
}

// FaceFont wraps a font.Face.
type FaceFont struct {
	name string
	size float64
	face font.Face
}

// NewFaceFont wraps face under name.
func NewFaceFont(name string, size float64, face font.Face) *FaceFont {
	return &FaceFont{name: name, size: size, face: face}
}

func (f *FaceFont) Name() string    { return f.name }
func (f *FaceFont) Size() float64   { return f.size }
func (f *FaceFont) Face() font.Face { return f.face }
func (f *FaceFont) String() string  { return fmt.Sprintf("%s@%g", f.name, f.size) }

var defaultFont = NewFaceFont("basic7x13", 13, basicfont.Face7x13)

// DefaultFont is the built-in 7x13 bitmap face.
func DefaultFont() Font {
	return defaultFont
}

// ParseFont loads a TrueType/OpenType file, or the first face of a
// collection, at size points and 72 DPI.
func ParseFont(path string, size float64) (*FaceFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadFont, path, err)
	}
	return ParseFontData(path, data, size)
}

// ParseFontData is ParseFont over bytes already in memory.
func ParseFontData(name string, data []byte, size float64) (*FaceFont, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w %s: invalid size %g", ErrLoadFont, name, size)
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		collection, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrLoadFont, name, err)
		}
		if collection.NumFonts() == 0 {
			return nil, fmt.Errorf("%w %s: empty collection", ErrLoadFont, name)
		}
		tt, err = collection.Font(0)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrLoadFont, name, err)
		}
	}

	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoadFont, name, err)
	}
	return NewFaceFont(name, size, face), nil
}

// MeasureText returns the pixel size of text set in f.
func MeasureText(f Font, text string) (w, h int) {
	face := f.Face()
	w = font.MeasureString(face, text).Ceil()
	h = face.Metrics().Height.Ceil()
	return w, h
}
