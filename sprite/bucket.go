package sprite

import (
	"iter"
	"reflect"

	"github.com/kamstrup/intmap"
	"github.com/plus3/game2d/gfx"
)

const blockSize = 64

// bucket is the type-erased view of a storage the registry iterates over.
type bucket interface {
	typeOf() reflect.Type
	len() int
	capacity() int
	slots() int
	remove(serial uint32) bool
	compact()
	update(f *UpdateFrame)
	draw(dst gfx.Renderer)
	collect(dst []layeredSprite) []layeredSprite
	lookup(serial uint32) (Sprite, bool)
	each(yield func(Handle, Sprite) bool) bool
}

type layeredSprite struct {
	layer  int
	sprite Sprite
}

// storage holds values of one concrete type in fixed-size blocks. Blocks are
// allocated individually so growing never moves existing values. Removed
// slots are left as holes until compact, which keeps insertion order.
type storage[T any, PT interface {
	*T
	Sprite
}] struct {
	id      uint32
	typ     reflect.Type
	layered bool

	blocks  []*[blockSize]T
	serials []*[blockSize]uint32 // 0 marks an empty slot
	next    int
	live    int

	lastSerial uint32
	index      *intmap.Map[uint32, int]
}

func newStorage[T any, PT interface {
	*T
	Sprite
}](id uint32) *storage[T, PT] {
	_, layered := any(PT(nil)).(Layered)
	return &storage[T, PT]{
		id:      id,
		typ:     reflect.TypeFor[T](),
		layered: layered,
		index:   intmap.New[uint32, int](blockSize),
	}
}

func (s *storage[T, PT]) typeOf() reflect.Type { return s.typ }
func (s *storage[T, PT]) len() int             { return s.live }
func (s *storage[T, PT]) capacity() int        { return len(s.blocks) * blockSize }
func (s *storage[T, PT]) slots() int           { return s.next }

func (s *storage[T, PT]) append(v T) Handle {
	slot := s.next
	s.next++

	blockIdx := slot / blockSize
	slotIdx := slot % blockSize
	if blockIdx >= len(s.blocks) {
		s.blocks = append(s.blocks, new([blockSize]T))
		s.serials = append(s.serials, new([blockSize]uint32))
	}

	s.lastSerial++
	serial := s.lastSerial

	s.blocks[blockIdx][slotIdx] = v
	s.serials[blockIdx][slotIdx] = serial
	s.index.Put(serial, slot)
	s.live++
	return newHandle(s.id, serial)
}

func (s *storage[T, PT]) at(slot int) PT {
	return PT(&s.blocks[slot/blockSize][slot%blockSize])
}

func (s *storage[T, PT]) serialAt(slot int) uint32 {
	return s.serials[slot/blockSize][slot%blockSize]
}

func (s *storage[T, PT]) get(serial uint32) *T {
	slot, ok := s.index.Get(serial)
	if !ok {
		return nil
	}
	return s.at(slot)
}

func (s *storage[T, PT]) lookup(serial uint32) (Sprite, bool) {
	slot, ok := s.index.Get(serial)
	if !ok {
		return nil, false
	}
	return s.at(slot), true
}

func (s *storage[T, PT]) remove(serial uint32) bool {
	slot, ok := s.index.Get(serial)
	if !ok {
		return false
	}
	s.index.Del(serial)

	var zero T
	s.blocks[slot/blockSize][slot%blockSize] = zero
	s.serials[slot/blockSize][slot%blockSize] = 0
	s.live--
	return true
}

// compact moves live values down over the holes, keeping their order, and
// drops blocks that are no longer needed.
func (s *storage[T, PT]) compact() {
	if s.live == s.next {
		return
	}

	write := 0
	for read := 0; read < s.next; read++ {
		serial := s.serialAt(read)
		if serial == 0 {
			continue
		}
		if read != write {
			s.blocks[write/blockSize][write%blockSize] = s.blocks[read/blockSize][read%blockSize]
			s.serials[write/blockSize][write%blockSize] = serial
			s.index.Put(serial, write)
		}
		write++
	}

	var zero T
	for i := write; i < s.next; i++ {
		s.blocks[i/blockSize][i%blockSize] = zero
		s.serials[i/blockSize][i%blockSize] = 0
	}
	s.next = write

	keep := max(1, (write+blockSize-1)/blockSize)
	if keep < len(s.blocks) {
		clear(s.blocks[keep:])
		clear(s.serials[keep:])
		s.blocks = s.blocks[:keep]
		s.serials = s.serials[:keep]
	}
}

func (s *storage[T, PT]) all() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		end := s.next
		for i := 0; i < end; i++ {
			serial := s.serialAt(i)
			if serial == 0 {
				continue
			}
			if !yield(newHandle(s.id, serial), s.at(i)) {
				return
			}
		}
	}
}

// each yields every live sprite and reports whether iteration should go on.
func (s *storage[T, PT]) each(yield func(Handle, Sprite) bool) bool {
	end := s.next
	for i := 0; i < end; i++ {
		serial := s.serialAt(i)
		if serial == 0 {
			continue
		}
		if !yield(newHandle(s.id, serial), s.at(i)) {
			return false
		}
	}
	return true
}

func (s *storage[T, PT]) update(f *UpdateFrame) {
	end := s.next
	for i := 0; i < end; i++ {
		if s.serialAt(i) != 0 {
			s.at(i).Update(f)
		}
	}
}

func (s *storage[T, PT]) draw(dst gfx.Renderer) {
	end := s.next
	for i := 0; i < end; i++ {
		if s.serialAt(i) != 0 {
			s.at(i).Draw(dst)
		}
	}
}

func (s *storage[T, PT]) collect(dst []layeredSprite) []layeredSprite {
	end := s.next
	for i := 0; i < end; i++ {
		if s.serialAt(i) == 0 {
			continue
		}
		sp := s.at(i)
		layer := 0
		if s.layered {
			layer = layerOf(sp)
		}
		dst = append(dst, layeredSprite{layer: layer, sprite: sp})
	}
	return dst
}
