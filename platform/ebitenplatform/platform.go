// Package ebitenplatform runs a game loop in an Ebitengine window.
package ebitenplatform

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/game2d/game"
	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/gfx/ebitengfx"
	"github.com/plus3/game2d/platform"
)

// Overlay is drawn over the game, e.g. an ImGui debug UI. BeginFrame and
// EndFrame bracket the loop's frame in Update.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Platform translates ebiten input into platform events and draws through an
// offscreen canvas.
type Platform struct {
	window platform.WindowOptions
	gfx    *ebitengfx.Renderer

	keys       []ebiten.Key
	cursorX    int
	cursorY    int
	cursorSeen bool

	mu      sync.Mutex
	pending []platform.Event
}

// New creates the platform and its canvas. The window itself opens in Run.
func New(window platform.WindowOptions) *Platform {
	return &Platform{
		window: window,
		gfx:    ebitengfx.New(window.Width, window.Height),
	}
}

func (p *Platform) Renderer() gfx.Renderer {
	return p.gfx
}

// Push queues events for the next poll; Push(platform.QuitEvent()) closes
// the game. It is safe to call from any goroutine.
func (p *Platform) Push(events ...platform.Event) {
	p.mu.Lock()
	p.pending = append(p.pending, events...)
	p.mu.Unlock()
}

func (p *Platform) PollEvents(dst []platform.Event) []platform.Event {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key, ok := KeyFromEbiten(k); ok {
			dst = append(dst, platform.Down(key))
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if key, ok := KeyFromEbiten(k); ok {
			dst = append(dst, platform.Up(key))
		}
	}

	x, y := ebiten.CursorPosition()
	if !p.cursorSeen || x != p.cursorX || y != p.cursorY {
		p.cursorX, p.cursorY, p.cursorSeen = x, y, true
		dst = append(dst, platform.Move(float64(x), float64(y)))
	}

	p.mu.Lock()
	dst = append(dst, p.pending...)
	clear(p.pending)
	p.pending = p.pending[:0]
	p.mu.Unlock()

	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, platform.QuitEvent())
	}
	return dst
}

// Run opens the window and runs loop until it stops. Ebiten calls Update at
// the loop's max fps, so the loop's own post-frame sleep is not used.
// overlay may be nil.
func Run(loop *game.Loop, p *Platform, overlay Overlay) error {
	ebiten.SetWindowTitle(p.window.Title)
	ebiten.SetWindowSize(p.window.Width, p.window.Height)
	ebiten.SetFullscreen(p.window.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	if fps := loop.MaxFPS(); fps > 0 {
		ebiten.SetTPS(max(1, int(math.Round(fps))))
	}

	if loop.State() == game.Uninitialized {
		if err := loop.Start(); err != nil {
			return err
		}
	}
	return ebiten.RunGame(&runner{loop: loop, p: p, overlay: overlay})
}

type runner struct {
	loop    *game.Loop
	p       *Platform
	overlay Overlay
}

func (r *runner) Update() error {
	if r.overlay != nil {
		r.overlay.BeginFrame()
	}
	running := r.loop.Step()
	if r.overlay != nil {
		r.overlay.EndFrame()
	}
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (r *runner) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.p.gfx.Canvas(), nil)
	if r.overlay != nil {
		r.overlay.Draw(screen)
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if r.overlay != nil {
		r.overlay.Layout(outsideWidth, outsideHeight)
	}
	return r.p.window.Width, r.p.window.Height
}
