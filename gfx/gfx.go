// Package gfx is the drawing contract between the runtime and a graphics
// backend. Backends live in subpackages; Headless records calls for tests.
package gfx

import (
	"errors"
	"image/color"
)

var (
	ErrLoadTexture = errors.New("load texture")
	ErrLoadFont    = errors.New("load font")
	ErrRenderText  = errors.New("render text")
)

var (
	Red   = color.RGBA{R: 255, A: 255}
	Green = color.RGBA{G: 255, A: 255}
	Blue  = color.RGBA{B: 255, A: 255}
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// DrawMode selects filled or outlined shapes.
type DrawMode int

const (
	Fill DrawMode = iota
	Line
)

func (m DrawMode) String() string {
	switch m {
	case Fill:
		return "fill"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in window coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap with positive area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Style carries the drawing state that used to live on the render context:
// shape color, line width, font and text colors. Pass it explicitly.
type Style struct {
	Color      color.Color
	LineWidth  float64
	Font       Font
	FontColor  color.Color
	Background color.Color
}

// DefaultStyle is black shapes, white text on a black background, 1px lines
// and the built-in bitmap font.
func DefaultStyle() Style {
	return Style{
		Color:      Black,
		LineWidth:  1,
		Font:       DefaultFont(),
		FontColor:  White,
		Background: Black,
	}
}

// WithColor returns a copy of s drawing in c.
func (s Style) WithColor(c color.Color) Style {
	s.Color = c
	return s
}

// StrokeWidth returns the line width, at least 1.
func (s Style) StrokeWidth() float64 {
	if s.LineWidth <= 0 {
		return 1
	}
	return s.LineWidth
}

// DrawOptions positions an image. Rotation is in radians around the origin,
// which is given in source pixels. Zero scales mean 1.
type DrawOptions struct {
	X, Y             float64
	Rotation         float64
	ScaleX, ScaleY   float64
	FlipX, FlipY     bool
	OriginX, OriginY float64
}

// At returns options drawing at x, y unscaled.
func At(x, y float64) DrawOptions {
	return DrawOptions{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Scale returns the effective scale factors.
func (o DrawOptions) Scale() (sx, sy float64) {
	sx, sy = o.ScaleX, o.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// Renderer is what a backend provides to the loop and to user callbacks.
type Renderer interface {
	// Clear starts a frame by filling the surface.
	Clear(c color.Color)
	// Present ends a frame.
	Present()
	DrawLine(x1, y1, x2, y2 float64, style Style)
	DrawRect(mode DrawMode, r Rect, style Style)
	DrawImage(img Image, opts DrawOptions)
	LoadTexture(path string) (Image, error)
	LoadFont(path string, size float64) (Font, error)
	RenderText(f Font, text string, c color.Color) (Image, error)
}

// Print renders text with the style's font and color and draws it at x, y.
func Print(r Renderer, text string, x, y float64, style Style) error {
	f := style.Font
	if f == nil {
		f = DefaultFont()
	}
	c := style.FontColor
	if c == nil {
		c = White
	}
	img, err := r.RenderText(f, text, c)
	if err != nil {
		return err
	}
	r.DrawImage(img, At(x, y))
	return nil
}
