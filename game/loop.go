// Package game drives a user's game: it loads it once, then runs frames of
// event pump, input update, update, draw and present until the platform
// reports a quit.
package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/platform"
	"github.com/plus3/game2d/sprite"
)

var (
	ErrAlreadyStarted = errors.New("loop already started")
	ErrNoPlatform     = errors.New("no platform")
)

// State is the loop's lifecycle stage.
type State int

const (
	Uninitialized State = iota
	Loaded
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loaded:
		return "loaded"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Loop at construction.
type Option func(*Loop)

// WithRegistry uses r instead of a fresh sprite registry.
func WithRegistry(r *sprite.Registry) Option {
	return func(l *Loop) { l.ctx.Sprites = r }
}

// WithInput uses s instead of a fresh input state.
func WithInput(s *input.State) Option {
	return func(l *Loop) { l.ctx.Input = s }
}

// WithStyle sets the initial drawing style.
func WithStyle(s gfx.Style) Option {
	return func(l *Loop) { l.ctx.Style = s }
}

// Loop runs frames on a single goroutine. Everything reachable from its
// Context belongs to that goroutine; other goroutines talk to it via Post.
type Loop struct {
	platform platform.Platform
	funcs    Funcs
	handler  any
	phases   phases

	maxFPS float64
	log    *log.Logger
	clock  Clock

	ctx   *Context
	state State
	last  time.Time

	events  []platform.Event
	pressed []input.Key

	mu      sync.Mutex
	mailbox []func(*Context)
	running []func(*Context)

	stats *frameStats
}

// New creates a loop over p. Register handlers with WithHandler or the On*
// methods before calling Start or Run.
func New(p platform.Platform, opts ...Option) *Loop {
	l := &Loop{
		platform: p,
		log:      log.Default(),
		clock:    SystemClock(),
		stats:    newFrameStats(),
	}
	l.handler = &l.funcs
	l.ctx = &Context{
		Style:   gfx.DefaultStyle(),
		Input:   input.NewState(),
		Sprites: sprite.NewRegistry(),
		Log:     l.log,
	}
	if p != nil {
		l.ctx.Gfx = p.Renderer()
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithHandler makes h the game. h may implement any of Loader, Updater,
// Drawer, KeyHandler and Quitter. It replaces funcs set with the On* methods.
func (l *Loop) WithHandler(h any) *Loop {
	l.handler = h
	return l
}

// OnLoad sets the load callback.
func (l *Loop) OnLoad(fn func(*Context) error) *Loop {
	l.funcs.OnLoad = fn
	l.handler = &l.funcs
	return l
}

// OnUpdate sets the update callback.
func (l *Loop) OnUpdate(fn func(*Context, float64)) *Loop {
	l.funcs.OnUpdate = fn
	l.handler = &l.funcs
	return l
}

// OnDraw sets the draw callback.
func (l *Loop) OnDraw(fn func(*Context)) *Loop {
	l.funcs.OnDraw = fn
	l.handler = &l.funcs
	return l
}

// OnKeyPressed sets the key-pressed callback.
func (l *Loop) OnKeyPressed(fn func(*Context, input.Key)) *Loop {
	l.funcs.OnKeyPressed = fn
	l.handler = &l.funcs
	return l
}

// OnQuit sets the quit callback.
func (l *Loop) OnQuit(fn func(*Context)) *Loop {
	l.funcs.OnQuit = fn
	l.handler = &l.funcs
	return l
}

// WithMaxFPS sets the frame-rate ceiling. dt is clamped to 1/fps and Run
// sleeps 1/fps after each frame. Zero or less disables both.
func (l *Loop) WithMaxFPS(fps float64) *Loop {
	l.maxFPS = fps
	return l
}

// WithLogger sets the logger handed to callbacks through the Context.
func (l *Loop) WithLogger(logger *log.Logger) *Loop {
	l.log = logger
	l.ctx.Log = logger
	return l
}

// WithClock replaces the wall clock.
func (l *Loop) WithClock(c Clock) *Loop {
	l.clock = c
	return l
}

// MaxFPS returns the configured ceiling.
func (l *Loop) MaxFPS() float64 {
	return l.maxFPS
}

func (l *Loop) State() State {
	return l.state
}

// Context returns the context passed to callbacks.
func (l *Loop) Context() *Context {
	return l.ctx
}

// Stats returns frame counts and per-phase timing.
func (l *Loop) Stats() Stats {
	return l.stats.snapshot(l.state)
}

// Post queues fn to run on the loop goroutine at the start of the next
// frame. It is safe to call from any goroutine.
func (l *Loop) Post(fn func(*Context)) {
	l.mu.Lock()
	l.mailbox = append(l.mailbox, fn)
	l.mu.Unlock()
}

// Start runs the load callback. On error the loop stays Uninitialized.
func (l *Loop) Start() error {
	if l.state != Uninitialized {
		return fmt.Errorf("%w: %s", ErrAlreadyStarted, l.state)
	}
	if l.platform == nil {
		return ErrNoPlatform
	}

	l.phases = bind(l.handler)
	if l.phases.load != nil {
		if err := l.phases.load.Load(l.ctx); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}

	l.state = Loaded
	l.last = l.clock.Now()
	l.log.Debug("game loaded", "maxFPS", l.maxFPS)
	return nil
}

// Step runs one frame. It reports false once the loop has stopped, or if
// Start has not succeeded yet.
func (l *Loop) Step() bool {
	switch l.state {
	case Uninitialized, Stopped:
		return false
	case Loaded:
		l.state = Running
	}

	bg := l.ctx.Style.Background
	if bg == nil {
		bg = gfx.Black
	}
	l.ctx.Gfx.Clear(bg)
	l.drainMailbox()

	start := time.Now()
	quit := l.pumpEvents()
	l.stats.record(phaseEvents, time.Since(start))
	if quit {
		l.stop()
		return false
	}

	if l.phases.keys != nil {
		start = time.Now()
		l.pressed = l.ctx.Input.Keyboard.AppendJustPressed(l.pressed[:0])
		for _, key := range l.pressed {
			l.phases.keys.KeyPressed(l.ctx, key)
		}
		l.stats.record(phaseKeys, time.Since(start))
	}

	dt := l.delta()
	l.stats.lastDt = dt

	if l.phases.update != nil {
		start = time.Now()
		l.phases.update.Update(l.ctx, dt)
		l.stats.record(phaseUpdate, time.Since(start))
	}

	start = time.Now()
	l.ctx.Sprites.UpdateAll(dt, l.ctx.Input, l.ctx.Gfx)
	l.stats.record(phaseSpritesUpdate, time.Since(start))

	start = time.Now()
	l.ctx.Sprites.DrawAll(l.ctx.Gfx)
	l.stats.record(phaseSpritesDraw, time.Since(start))

	if l.phases.draw != nil {
		start = time.Now()
		l.phases.draw.Draw(l.ctx)
		l.stats.record(phaseDraw, time.Since(start))
	}

	start = time.Now()
	l.ctx.Gfx.Present()
	l.stats.record(phasePresent, time.Since(start))

	l.stats.frame(l.clock.Now())
	return true
}

// Run starts the loop if needed and runs frames until a quit event. With a
// frame-rate ceiling it sleeps 1/fps after every frame, whatever the frame
// cost.
func (l *Loop) Run() error {
	if l.state == Uninitialized {
		if err := l.Start(); err != nil {
			return err
		}
	}

	for l.Step() {
		if l.maxFPS > 0 {
			l.clock.Sleep(time.Duration(float64(time.Second) / l.maxFPS))
		}
	}
	return nil
}

func (l *Loop) pumpEvents() (quit bool) {
	kb := l.ctx.Input.Keyboard
	l.events = l.platform.PollEvents(l.events[:0])
	for _, ev := range l.events {
		switch ev.Kind {
		case platform.KeyDown:
			kb.OnKeyDown(ev.Key)
		case platform.KeyUp:
			if err := kb.OnKeyUp(ev.Key); err != nil {
				l.log.Warn("ignored key up", "key", ev.Key, "err", err)
			}
		case platform.MouseMotion:
			l.ctx.Input.Mouse.SetPosition(ev.X, ev.Y)
		case platform.Quit:
			return true
		}
	}
	return false
}

// delta returns the seconds since the previous frame, clamped to 1/maxFPS.
func (l *Loop) delta() float64 {
	now := l.clock.Now()
	dt := now.Sub(l.last).Seconds()
	l.last = now
	if dt < 0 {
		dt = 0
	}
	if l.maxFPS > 0 {
		dt = min(dt, 1/l.maxFPS)
	}
	return dt
}

func (l *Loop) stop() {
	if l.phases.quit != nil {
		l.phases.quit.Quit(l.ctx)
	}
	l.state = Stopped
	l.log.Debug("game stopped", "frames", l.stats.frames)
}

func (l *Loop) drainMailbox() {
	l.mu.Lock()
	l.running, l.mailbox = l.mailbox, l.running[:0]
	l.mu.Unlock()

	for _, fn := range l.running {
		fn(l.ctx)
	}
	clear(l.running)
}
