// Package anim advances multi-frame sequences in wall-clock time, independent
// of how often the caller renders.
package anim

import "time"

// Clock reports the current time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// Animation is an ordered list of frames played in a loop. F is whatever the
// renderer draws: an image, a quad on a sheet, an index.
type Animation[F any] struct {
	frames     []F
	index      int
	delay      time.Duration
	lastChange time.Time
	clock      Clock
}

// New creates an animation with the given frames and no delay, so every Run
// advances one frame.
func New[F any](frames ...F) *Animation[F] {
	return &Animation[F]{
		frames: frames,
		index:  -1,
		clock:  SystemClock,
	}
}

// WithClock replaces the time source and returns the animation.
func (a *Animation[F]) WithClock(clock Clock) *Animation[F] {
	a.clock = clock
	return a
}

// Add appends frames to the sequence.
func (a *Animation[F]) Add(frames ...F) {
	a.frames = append(a.frames, frames...)
}

// SetDelay sets the minimum time between two frame changes. Only whole
// milliseconds count; anything below 1ms behaves like no delay.
func (a *Animation[F]) SetDelay(d time.Duration) {
	a.delay = d
}

// ClearDelay makes every Run advance.
func (a *Animation[F]) ClearDelay() {
	a.delay = 0
}

// Delay returns the configured delay.
func (a *Animation[F]) Delay() time.Duration {
	return a.delay
}

// Len returns the number of frames.
func (a *Animation[F]) Len() int {
	return len(a.frames)
}

// Index returns the current frame index, or -1 before the first advance.
func (a *Animation[F]) Index() int {
	return a.index
}

// Run advances the animation if the delay has elapsed and returns the
// current frame. It returns false when there are no frames.
func (a *Animation[F]) Run() (F, bool) {
	var zero F
	if len(a.frames) == 0 {
		return zero, false
	}

	if a.due() {
		a.index++
		a.lastChange = a.clock.Now()
	}
	if a.index >= len(a.frames) || a.index < 0 {
		a.index = 0
	}
	return a.frames[a.index], true
}

// Frame returns the current frame without advancing.
func (a *Animation[F]) Frame() (F, bool) {
	var zero F
	if a.index < 0 || a.index >= len(a.frames) {
		return zero, false
	}
	return a.frames[a.index], true
}

// Restart rewinds to before the first frame. The next Run shows frame 0
// whatever the delay.
func (a *Animation[F]) Restart() {
	a.index = -1
	a.lastChange = time.Time{}
}

func (a *Animation[F]) due() bool {
	delayMs := a.delay.Milliseconds()
	if delayMs <= 0 || a.lastChange.IsZero() {
		return true
	}
	now := a.clock.Now()
	if now.Before(a.lastChange) {
		// Clock went backwards: hold the frame.
		return false
	}
	return now.Sub(a.lastChange).Milliseconds() >= delayMs
}
