package gfx

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpRect
	OpImage
	OpPresent
)

func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpLine:
		return "line"
	case OpRect:
		return "rect"
	case OpImage:
		return "image"
	case OpPresent:
		return "present"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded call.
type Op struct {
	Kind    OpKind
	Color   color.Color
	Mode    DrawMode
	Rect    Rect
	Line    [4]float64
	Image   Image
	Options DrawOptions
}

// TextImage is what Headless.RenderText returns.
type TextImage struct {
	Text   string
	Font   Font
	Color  color.Color
	Width  int
	Height int
}

func (t *TextImage) Size() (w, h int) { return t.Width, t.Height }

// Headless is a Renderer without a window. It records draw calls for the
// current frame and really loads textures and fonts, so load errors behave
// as with a windowed backend.
type Headless struct {
	Width, Height int

	// Ops holds the calls since the last Clear.
	Ops    []Op
	Frames int
}

// NewHeadless returns a recorder for a w×h surface.
func NewHeadless(w, h int) *Headless {
	return &Headless{Width: w, Height: h}
}

func (r *Headless) Clear(c color.Color) {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Headless) Present() {
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
	r.Frames++
}

func (r *Headless) DrawLine(x1, y1, x2, y2 float64, style Style) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Color: style.Color, Line: [4]float64{x1, y1, x2, y2}})
}

func (r *Headless) DrawRect(mode DrawMode, rect Rect, style Style) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Mode: mode, Rect: rect, Color: style.Color})
}

func (r *Headless) DrawImage(img Image, opts DrawOptions) {
	r.Ops = append(r.Ops, Op{Kind: OpImage, Image: img, Options: opts})
}

func (r *Headless) LoadTexture(path string) (Image, error) {
	cfg, err := DecodeConfigFile(path)
	if err != nil {
		return nil, err
	}
	return &Texture{Path: path, Width: cfg.Width, Height: cfg.Height}, nil
}

func (r *Headless) LoadFont(path string, size float64) (Font, error) {
	return ParseFont(path, size)
}

func (r *Headless) RenderText(f Font, text string, c color.Color) (Image, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil font", ErrRenderText)
	}
	w, h := MeasureText(f, text)
	return &TextImage{Text: text, Font: f, Color: c, Width: w, Height: h}, nil
}

// Count returns how many ops of kind were recorded this frame.
func (r *Headless) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
