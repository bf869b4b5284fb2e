package game

import "github.com/plus3/game2d/input"

// A handler may implement any subset of the interfaces below. Phases whose
// interface is missing are skipped.

// Loader runs once before the first frame.
type Loader interface {
	Load(ctx *Context) error
}

// Updater advances the game by dt seconds.
type Updater interface {
	Update(ctx *Context, dt float64)
}

// Drawer draws the frame.
type Drawer interface {
	Draw(ctx *Context)
}

// KeyHandler is called once per key pressed since the previous frame.
type KeyHandler interface {
	KeyPressed(ctx *Context, key input.Key)
}

// Quitter is called once when the platform asks to quit.
type Quitter interface {
	Quit(ctx *Context)
}

// Funcs is a handler built from plain functions. Nil fields are no-ops, and
// a nil OnKeyPressed also leaves the just-pressed keys undrained.
type Funcs struct {
	OnLoad       func(ctx *Context) error
	OnUpdate     func(ctx *Context, dt float64)
	OnDraw       func(ctx *Context)
	OnKeyPressed func(ctx *Context, key input.Key)
	OnQuit       func(ctx *Context)
}

func (f *Funcs) Load(ctx *Context) error {
	if f.OnLoad == nil {
		return nil
	}
	return f.OnLoad(ctx)
}

func (f *Funcs) Update(ctx *Context, dt float64) {
	if f.OnUpdate != nil {
		f.OnUpdate(ctx, dt)
	}
}

func (f *Funcs) Draw(ctx *Context) {
	if f.OnDraw != nil {
		f.OnDraw(ctx)
	}
}

func (f *Funcs) KeyPressed(ctx *Context, key input.Key) {
	if f.OnKeyPressed != nil {
		f.OnKeyPressed(ctx, key)
	}
}

func (f *Funcs) Quit(ctx *Context) {
	if f.OnQuit != nil {
		f.OnQuit(ctx)
	}
}

// phases is the bound view of a handler.
type phases struct {
	load   Loader
	update Updater
	draw   Drawer
	keys   KeyHandler
	quit   Quitter
}

func bind(h any) phases {
	if f, ok := h.(*Funcs); ok {
		var p phases
		if f.OnLoad != nil {
			p.load = f
		}
		if f.OnUpdate != nil {
			p.update = f
		}
		if f.OnDraw != nil {
			p.draw = f
		}
		if f.OnKeyPressed != nil {
			p.keys = f
		}
		if f.OnQuit != nil {
			p.quit = f
		}
		return p
	}

	var p phases
	p.load, _ = h.(Loader)
	p.update, _ = h.(Updater)
	p.draw, _ = h.(Drawer)
	p.keys, _ = h.(KeyHandler)
	p.quit, _ = h.(Quitter)
	return p
}
