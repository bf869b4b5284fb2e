// Package platform describes what the game loop needs from a window system:
// a stream of input events and a renderer.
package platform

import (
	"fmt"

	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
)

// EventKind identifies a platform event.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	MouseMotion
	Quit
)

func (k EventKind) String() string {
	switch k {
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case MouseMotion:
		return "mouse-motion"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one raw input event. Key is set for key events, X and Y for
// mouse motion.
type Event struct {
	Kind EventKind
	Key  input.Key
	X, Y float64
}

func (e Event) String() string {
	switch e.Kind {
	case KeyDown, KeyUp:
		return fmt.Sprintf("%s %s", e.Kind, e.Key)
	case MouseMotion:
		return fmt.Sprintf("%s %g,%g", e.Kind, e.X, e.Y)
	default:
		return e.Kind.String()
	}
}

// Platform is a window or a stand-in for one.
type Platform interface {
	// PollEvents appends the events that arrived since the last call to dst.
	PollEvents(dst []Event) []Event
	Renderer() gfx.Renderer
}

// WindowOptions describes the window to create.
type WindowOptions struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// DefaultWindow is an 800×600 window.
func DefaultWindow() WindowOptions {
	return WindowOptions{Title: "game2d", Width: 800, Height: 600}
}

// Down is shorthand for a key-down event.
func Down(k input.Key) Event { return Event{Kind: KeyDown, Key: k} }

// Up is shorthand for a key-up event.
func Up(k input.Key) Event { return Event{Kind: KeyUp, Key: k} }

// Move is shorthand for a mouse-motion event.
func Move(x, y float64) Event { return Event{Kind: MouseMotion, X: x, Y: y} }

// QuitEvent is shorthand for a quit event.
func QuitEvent() Event { return Event{Kind: Quit} }
