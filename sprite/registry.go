package sprite

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
)

// Registry owns sprites, one bucket per concrete type. Buckets are visited in
// the order they were created and sprites within a bucket in insertion order.
type Registry struct {
	buckets []bucket
	byType  map[reflect.Type]bucket
	cmds    *Commands

	drawList []layeredSprite
	layered  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]bucket),
		cmds:   newCommands(),
	}
}

func storageFor[T any, PT interface {
	*T
	Sprite
}](r *Registry, create bool) *storage[T, PT] {
	t := reflect.TypeFor[T]()
	if b, ok := r.byType[t]; ok {
		return b.(*storage[T, PT])
	}
	if !create {
		return nil
	}
	s := newStorage[T, PT](uint32(len(r.buckets)))
	r.buckets = append(r.buckets, s)
	r.byType[t] = s
	r.layered = r.layered || s.layered
	return s
}

// Add moves v into the registry and returns its handle. *T must implement
// Sprite; the type parameter PT is inferred.
func Add[T any, PT interface {
	*T
	Sprite
}](r *Registry, v T) Handle {
	return storageFor[T, PT](r, true).append(v)
}

// Get returns the sprite for h, or nil if h is stale or of another type.
func Get[T any, PT interface {
	*T
	Sprite
}](r *Registry, h Handle) *T {
	s := storageFor[T, PT](r, false)
	if s == nil || s.id != h.Bucket() {
		return nil
	}
	return s.get(h.Serial())
}

// Each iterates the live sprites of type T in insertion order.
func Each[T any, PT interface {
	*T
	Sprite
}](r *Registry) iter.Seq2[Handle, *T] {
	s := storageFor[T, PT](r, false)
	if s == nil {
		return func(func(Handle, *T) bool) {}
	}
	return s.all()
}

// Bucket returns every live sprite of type T. An unknown type yields an
// empty slice.
func Bucket[T any, PT interface {
	*T
	Sprite
}](r *Registry) []*T {
	s := storageFor[T, PT](r, false)
	if s == nil {
		return nil
	}
	out := make([]*T, 0, s.len())
	for _, v := range s.all() {
		out = append(out, v)
	}
	return out
}

// Count returns the number of live sprites of type T.
func Count[T any, PT interface {
	*T
	Sprite
}](r *Registry) int {
	s := storageFor[T, PT](r, false)
	if s == nil {
		return 0
	}
	return s.len()
}

// Remove drops the sprite for h. It reports false for a stale handle.
func (r *Registry) Remove(h Handle) bool {
	id := h.Bucket()
	if int(id) >= len(r.buckets) {
		return false
	}
	return r.buckets[id].remove(h.Serial())
}

// Lookup returns the sprite for h whatever its type.
func (r *Registry) Lookup(h Handle) (Sprite, bool) {
	id := h.Bucket()
	if int(id) >= len(r.buckets) {
		return nil, false
	}
	return r.buckets[id].lookup(h.Serial())
}

// All iterates every live sprite in registry order.
func (r *Registry) All() iter.Seq2[Handle, Sprite] {
	return func(yield func(Handle, Sprite) bool) {
		for _, b := range r.buckets {
			if !b.each(yield) {
				return
			}
		}
	}
}

// Len returns the number of live sprites across all buckets.
func (r *Registry) Len() int {
	n := 0
	for _, b := range r.buckets {
		n += b.len()
	}
	return n
}

// Compact closes the holes left by removals. Order is preserved and handles
// stay valid; pointers obtained earlier do not.
func (r *Registry) Compact() {
	for _, b := range r.buckets {
		b.compact()
	}
}

// Commands returns the registry's deferred command buffer.
func (r *Registry) Commands() *Commands {
	return r.cmds
}

// UpdateAll calls Update on every sprite, then applies the commands queued
// while doing so.
func (r *Registry) UpdateAll(dt float64, in *input.State, g gfx.Renderer) {
	frame := &UpdateFrame{
		DeltaTime: dt,
		Input:     in,
		Gfx:       g,
		Commands:  r.cmds,
		Registry:  r,
	}
	for _, b := range r.buckets {
		b.update(frame)
	}
	r.cmds.Flush(r)
}

// DrawAll calls Draw on every sprite. When any bucket holds Layered sprites
// the calls are stable-sorted by layer, otherwise they follow registry order.
func (r *Registry) DrawAll(dst gfx.Renderer) {
	if !r.layered {
		for _, b := range r.buckets {
			b.draw(dst)
		}
		return
	}

	list := r.drawList[:0]
	for _, b := range r.buckets {
		list = b.collect(list)
	}
	slices.SortStableFunc(list, func(a, b layeredSprite) int {
		return a.layer - b.layer
	})
	for _, ls := range list {
		ls.sprite.Draw(dst)
	}
	clear(list)
	r.drawList = list[:0]
}

// BucketStats describes one bucket.
type BucketStats struct {
	ID       uint32
	Type     string
	Count    int
	Slots    int
	Capacity int
}

// Stats summarizes the registry.
type Stats struct {
	Buckets []BucketStats
	Sprites int
}

func (r *Registry) Stats() Stats {
	stats := Stats{Buckets: make([]BucketStats, len(r.buckets))}
	for i, b := range r.buckets {
		stats.Buckets[i] = BucketStats{
			ID:       uint32(i),
			Type:     typeName(b.typeOf()),
			Count:    b.len(),
			Slots:    b.slots(),
			Capacity: b.capacity(),
		}
		stats.Sprites += b.len()
	}
	return stats
}

func typeName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return fmt.Sprintf("%s.%s", t.PkgPath(), t.Name())
}
