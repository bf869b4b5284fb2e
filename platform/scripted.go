package platform

import (
	"sync"

	"github.com/plus3/game2d/gfx"
)

// Scripted is a headless platform that replays events by poll number. Poll
// n (counting from 0) delivers Script[n] followed by anything pushed since
// the previous poll.
type Scripted struct {
	Script map[int][]Event

	mu      sync.Mutex
	pending []Event
	polls   int
	gfx     *gfx.Headless
}

// NewScripted returns a scripted platform drawing to a w×h headless renderer.
func NewScripted(w, h int) *Scripted {
	return &Scripted{
		Script: make(map[int][]Event),
		gfx:    gfx.NewHeadless(w, h),
	}
}

// At schedules events for poll n.
func (s *Scripted) At(n int, events ...Event) *Scripted {
	s.Script[n] = append(s.Script[n], events...)
	return s
}

// Push queues events for the next poll. It is safe to call from any
// goroutine.
func (s *Scripted) Push(events ...Event) {
	s.mu.Lock()
	s.pending = append(s.pending, events...)
	s.mu.Unlock()
}

func (s *Scripted) PollEvents(dst []Event) []Event {
	dst = append(dst, s.Script[s.polls]...)
	s.polls++

	s.mu.Lock()
	dst = append(dst, s.pending...)
	clear(s.pending)
	s.pending = s.pending[:0]
	s.mu.Unlock()
	return dst
}

// Polls returns how many times PollEvents has been called.
func (s *Scripted) Polls() int {
	return s.polls
}

func (s *Scripted) Renderer() gfx.Renderer {
	return s.gfx
}

// Headless returns the concrete recording renderer.
func (s *Scripted) Headless() *gfx.Headless {
	return s.gfx
}
