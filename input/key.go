// Package input turns raw platform key and cursor events into frame-stable state.
package input

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate stringer -type=Key -trimprefix=Key

// Key identifies a physical key. The set is closed: platform keys without a
// mapping are reported as KeyUnknown and never reach the keyboard state.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyShift
	KeyControl
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyCount is the number of defined keys, KeyUnknown included.
const KeyCount = int(KeyF12) + 1

var ErrUnknownKey = errors.New("unknown key")

// Keys returns every defined key except KeyUnknown, in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, KeyCount-1)
	for k := KeySpace; int(k) < KeyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Valid reports whether k is a defined key other than KeyUnknown.
func (k Key) Valid() bool {
	return k > KeyUnknown && int(k) < KeyCount
}

// ParseKey resolves a key name such as "Space", "left" or "F5".
// Matching ignores case.
func ParseKey(name string) (Key, error) {
	for _, k := range Keys() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
