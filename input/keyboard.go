package input

import (
	"errors"
	"fmt"

	"github.com/kamstrup/intmap"
)

// ErrUnmatchedKeyUp is returned by OnKeyUp for a key that was never seen going
// down. Focus changes can legitimately produce this, so callers log and move on.
var ErrUnmatchedKeyUp = errors.New("key up without matching key down")

// Keyboard tracks three views of the keys: held (level), released since the
// last press, and pressed since the last drain (edge).
//
// A key in pressed with value false has already been drained while still
// held; keeping the entry is what stops platform key repeat from flagging it
// again.
type Keyboard struct {
	down    *intmap.Map[Key, struct{}]
	up      *intmap.Map[Key, struct{}]
	pressed *intmap.Map[Key, bool]
}

// NewKeyboard returns a keyboard with no keys held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		down:    intmap.New[Key, struct{}](KeyCount),
		up:      intmap.New[Key, struct{}](KeyCount),
		pressed: intmap.New[Key, bool](KeyCount),
	}
}

// OnKeyDown records a key-down event. Repeated events for a held key are
// ignored by the just-pressed tracking.
func (kb *Keyboard) OnKeyDown(key Key) {
	if !key.Valid() {
		return
	}
	kb.down.Put(key, struct{}{})
	kb.up.Del(key)
	if !kb.pressed.Has(key) {
		kb.pressed.Put(key, true)
	}
}

// OnKeyUp records a key-up event. The key always ends up released; the error
// only reports that no matching key-down was tracked.
func (kb *Keyboard) OnKeyUp(key Key) error {
	if !key.Valid() {
		return nil
	}
	_, tracked := kb.pressed.Get(key)
	kb.up.Put(key, struct{}{})
	kb.down.Del(key)
	kb.pressed.Del(key)
	if !tracked {
		return fmt.Errorf("%w: %s", ErrUnmatchedKeyUp, key)
	}
	return nil
}

// IsDown reports whether key is currently held.
func (kb *Keyboard) IsDown(key Key) bool {
	return kb.down.Has(key)
}

// IsUp reports whether key has been released and not pressed again since.
// Keys that never received an event are neither down nor up.
func (kb *Keyboard) IsUp(key Key) bool {
	return kb.up.Has(key)
}

// DrainJustPressed returns every key flagged as just pressed and clears the
// flags. Order is unspecified.
func (kb *Keyboard) DrainJustPressed() []Key {
	return kb.AppendJustPressed(nil)
}

// AppendJustPressed is DrainJustPressed appending into dst.
func (kb *Keyboard) AppendJustPressed(dst []Key) []Key {
	start := len(dst)
	kb.pressed.ForEach(func(key Key, fresh bool) bool {
		if fresh {
			dst = append(dst, key)
		}
		return true
	})
	for _, key := range dst[start:] {
		kb.pressed.Put(key, false)
	}
	return dst
}

// HeldKeys returns the keys currently down, in declaration order.
func (kb *Keyboard) HeldKeys() []Key {
	var held []Key
	for _, key := range Keys() {
		if kb.down.Has(key) {
			held = append(held, key)
		}
	}
	return held
}

// Reset forgets all key state. Meant for session boundaries, not frames.
func (kb *Keyboard) Reset() {
	kb.down.Clear()
	kb.up.Clear()
	kb.pressed.Clear()
}
