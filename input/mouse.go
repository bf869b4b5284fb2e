package input

// Mouse holds the last cursor position reported by the platform.
type Mouse struct {
	x, y  float64
	moved bool
}

// SetPosition records a mouse-motion event.
func (m *Mouse) SetPosition(x, y float64) {
	m.x, m.y = x, y
	m.moved = true
}

// Position returns the cursor position in window coordinates.
func (m *Mouse) Position() (x, y float64) {
	return m.x, m.y
}

// Seen reports whether any motion event has arrived yet.
func (m *Mouse) Seen() bool {
	return m.moved
}

// State is the input snapshot handed to update callbacks.
type State struct {
	Keyboard *Keyboard
	Mouse    *Mouse
}

// NewState returns an empty input snapshot.
func NewState() *State {
	return &State{
		Keyboard: NewKeyboard(),
		Mouse:    &Mouse{},
	}
}

// Reset clears keyboard and mouse state between sessions.
func (s *State) Reset() {
	s.Keyboard.Reset()
	*s.Mouse = Mouse{}
}
