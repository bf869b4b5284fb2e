package ebitenplatform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/game2d/input"
)

var (
	fromEbiten = map[ebiten.Key]input.Key{
		ebiten.KeySpace:        input.KeySpace,
		ebiten.KeyArrowUp:      input.KeyUp,
		ebiten.KeyArrowDown:    input.KeyDown,
		ebiten.KeyArrowLeft:    input.KeyLeft,
		ebiten.KeyArrowRight:   input.KeyRight,
		ebiten.KeyEnter:        input.KeyEnter,
		ebiten.KeyNumpadEnter:  input.KeyEnter,
		ebiten.KeyEscape:       input.KeyEscape,
		ebiten.KeyTab:          input.KeyTab,
		ebiten.KeyBackspace:    input.KeyBackspace,
		ebiten.KeyShiftLeft:    input.KeyShift,
		ebiten.KeyShiftRight:   input.KeyShift,
		ebiten.KeyControlLeft:  input.KeyControl,
		ebiten.KeyControlRight: input.KeyControl,
	}
	toEbiten = map[input.Key]ebiten.Key{}
)

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		fromEbiten[k] = input.KeyA + input.Key(i)
	}

	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		fromEbiten[k] = input.Key0 + input.Key(i)
	}

	functions := []ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6,
		ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9, ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}
	for i, k := range functions {
		fromEbiten[k] = input.KeyF1 + input.Key(i)
	}

	// The left-hand and main-block keys win when several map to one Key.
	for ek, k := range fromEbiten {
		if prev, ok := toEbiten[k]; !ok || ek < prev {
			toEbiten[k] = ek
		}
	}
	toEbiten[input.KeyEnter] = ebiten.KeyEnter
	toEbiten[input.KeyShift] = ebiten.KeyShiftLeft
	toEbiten[input.KeyControl] = ebiten.KeyControlLeft
}

// KeyFromEbiten maps an ebiten key. Keys the runtime doesn't know report
// false.
func KeyFromEbiten(k ebiten.Key) (input.Key, bool) {
	key, ok := fromEbiten[k]
	return key, ok
}

// KeyToEbiten maps a runtime key to the ebiten key that produces it.
func KeyToEbiten(k input.Key) (ebiten.Key, bool) {
	ek, ok := toEbiten[k]
	return ek, ok
}
