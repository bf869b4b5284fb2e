// Package sprite stores game objects of many concrete types in per-type
// arenas and fans out the per-frame update and draw calls to them.
//
// Objects are stored by value. A pointer returned by Get, Each or Bucket is
// valid until the next Compact; hold a Handle across frames instead.
package sprite

import (
	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
)

// Sprite is the capability set every stored object provides.
type Sprite interface {
	Update(f *UpdateFrame)
	Draw(dst gfx.Renderer)
	Position() (x, y float64)
	Size() (w, h float64)
}

// Layered sprites are drawn in ascending layer order. Sprites that don't
// implement it are on layer 0.
type Layered interface {
	Layer() int
}

// UpdateFrame is what each sprite sees during UpdateAll.
type UpdateFrame struct {
	DeltaTime float64
	Input     *input.State
	Gfx       gfx.Renderer
	Commands  *Commands
	Registry  *Registry
}

// Bounds returns the sprite's axis-aligned bounding box.
func Bounds(s Sprite) gfx.Rect {
	x, y := s.Position()
	w, h := s.Size()
	return gfx.Rect{X: x, Y: y, W: w, H: h}
}

// Overlaps reports whether the bounding boxes of a and b intersect.
func Overlaps(a, b Sprite) bool {
	return Bounds(a).Intersects(Bounds(b))
}

func layerOf(s Sprite) int {
	if l, ok := s.(Layered); ok {
		return l.Layer()
	}
	return 0
}
