// Package ebitengfx implements gfx.Renderer on top of Ebitengine. All drawing
// goes to an offscreen canvas that the platform driver blits to the screen.
package ebitengfx

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/game2d/gfx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Image is a GPU texture owned by this backend.
type Image struct {
	img *ebiten.Image
}

// NewImage wraps an existing ebiten image.
func NewImage(img *ebiten.Image) *Image {
	return &Image{img: img}
}

func (i *Image) Size() (w, h int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

// Ebiten returns the underlying ebiten image.
func (i *Image) Ebiten() *ebiten.Image {
	return i.img
}

type Renderer struct {
	canvas *ebiten.Image
	frames int
}

// New allocates a w×h canvas.
func New(w, h int) *Renderer {
	return &Renderer{canvas: ebiten.NewImage(w, h)}
}

// Canvas is the image everything is drawn to.
func (r *Renderer) Canvas() *ebiten.Image {
	return r.canvas
}

// Frames counts presented frames.
func (r *Renderer) Frames() int {
	return r.frames
}

func (r *Renderer) Clear(c color.Color) {
	r.canvas.Fill(c)
}

func (r *Renderer) Present() {
	r.frames++
}

func (r *Renderer) DrawLine(x1, y1, x2, y2 float64, style gfx.Style) {
	vector.StrokeLine(r.canvas, float32(x1), float32(y1), float32(x2), float32(y2),
		float32(style.StrokeWidth()), colorOr(style.Color, gfx.Black), true)
}

func (r *Renderer) DrawRect(mode gfx.DrawMode, rect gfx.Rect, style gfx.Style) {
	c := colorOr(style.Color, gfx.Black)
	x, y, w, h := float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H)
	if mode == gfx.Line {
		vector.StrokeRect(r.canvas, x, y, w, h, float32(style.StrokeWidth()), c, false)
		return
	}
	vector.DrawFilledRect(r.canvas, x, y, w, h, c, false)
}

// DrawImage draws images from this backend, quads cut from them and
// wrappers around either. Anything else has no pixels here and is skipped.
func (r *Renderer) DrawImage(img gfx.Image, opts gfx.DrawOptions) {
	src := resolve(img)
	if src == nil {
		return
	}
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{GeoM: GeoM(opts, b.Dx(), b.Dy())}
	op.Filter = ebiten.FilterNearest
	r.canvas.DrawImage(src, op)
}

func (r *Renderer) LoadTexture(path string) (gfx.Image, error) {
	img, err := gfx.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return &Image{img: ebiten.NewImageFromImage(img)}, nil
}

func (r *Renderer) LoadFont(path string, size float64) (gfx.Font, error) {
	return gfx.ParseFont(path, size)
}

// RenderText rasterizes text on the CPU and uploads it as one texture.
func (r *Renderer) RenderText(f gfx.Font, text string, c color.Color) (gfx.Image, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil font", gfx.ErrRenderText)
	}
	face := f.Face()
	w, h := gfx.MeasureText(f, text)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(colorOr(c, gfx.White)),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: face.Metrics().Ascent},
	}
	drawer.DrawString(text)

	return &Image{img: ebiten.NewImageFromImage(dst)}, nil
}

// GeoM builds the transform for a w×h source: flip within the source rect,
// move the origin to 0,0, scale, rotate, then translate to X, Y.
func GeoM(opts gfx.DrawOptions, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	if opts.FlipX {
		g.Scale(-1, 1)
		g.Translate(float64(w), 0)
	}
	if opts.FlipY {
		g.Scale(1, -1)
		g.Translate(0, float64(h))
	}
	g.Translate(-opts.OriginX, -opts.OriginY)
	g.Scale(opts.Scale())
	if opts.Rotation != 0 {
		g.Rotate(opts.Rotation)
	}
	g.Translate(opts.X, opts.Y)
	return g
}

func resolve(img gfx.Image) *ebiten.Image {
	switch v := img.(type) {
	case *Image:
		return v.img
	case gfx.Quad:
		base := resolve(v.Image)
		if base == nil {
			return nil
		}
		return base.SubImage(v.Src.Add(base.Bounds().Min)).(*ebiten.Image)
	case *gfx.Quad:
		return resolve(*v)
	case gfx.Unwrapper:
		return resolve(v.Unwrap())
	}
	return nil
}

func colorOr(c, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}
