package anim

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrAnimationExists   = errors.New("animation already exists")
	ErrAnimationNotFound = errors.New("animation not found")
)

// Manager holds named animations for one entity and plays one at a time.
type Manager[F any] struct {
	animations map[string]*Animation[F]
	order      []string
	current    string
}

// NewManager returns an empty manager with no current animation.
func NewManager[F any]() *Manager[F] {
	return &Manager[F]{
		animations: make(map[string]*Animation[F]),
	}
}

// Add registers an animation under name. Names are unique.
func (m *Manager[F]) Add(name string, animation *Animation[F]) error {
	if _, exists := m.animations[name]; exists {
		return fmt.Errorf("%w: %s", ErrAnimationExists, name)
	}
	m.animations[name] = animation
	m.order = append(m.order, name)
	return nil
}

// SetCurrent selects the animation to play. Switching to a different
// animation restarts it; selecting the current one again keeps its progress.
// An unknown name leaves the selection untouched.
func (m *Manager[F]) SetCurrent(name string) error {
	animation, exists := m.animations[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrAnimationNotFound, name)
	}
	if m.current == name {
		return nil
	}
	m.current = name
	animation.Restart()
	return nil
}

// Current returns the selected animation name, or "" when none is selected.
func (m *Manager[F]) Current() string {
	return m.current
}

// Get returns the animation registered under name.
func (m *Manager[F]) Get(name string) (*Animation[F], bool) {
	animation, ok := m.animations[name]
	return animation, ok
}

// Names returns the registered names in insertion order.
func (m *Manager[F]) Names() []string {
	return slices.Clone(m.order)
}

// RunCurrent runs the selected animation. It returns false when nothing is
// selected or the animation has no frames.
func (m *Manager[F]) RunCurrent() (F, bool) {
	animation, ok := m.animations[m.current]
	if !ok {
		var zero F
		return zero, false
	}
	return animation.Run()
}

// RestartCurrent rewinds the selected animation, if any.
func (m *Manager[F]) RestartCurrent() {
	if animation, ok := m.animations[m.current]; ok {
		animation.Restart()
	}
}
