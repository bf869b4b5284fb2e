package main

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/plus3/game2d/anim"
	"github.com/plus3/game2d/assets"
	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/sprite"
)

const (
	playerSize = 32
	enemySize  = 24
)

var pastelColors = []color.RGBA{
	{R: 255, G: 179, B: 186, A: 255},
	{R: 179, G: 229, B: 252, A: 255},
	{R: 255, G: 223, B: 186, A: 255},
	{R: 186, G: 255, B: 201, A: 255},
	{R: 217, G: 186, B: 255, A: 255},
}

type controls struct {
	Up, Down, Left, Right input.Key
}

// Player moves with the arrow keys (or their configured bindings) and eats
// enemies it touches.
type Player struct {
	X, Y  float64
	Speed float64
	Score int

	keys   controls
	bounds gfx.Rect
	anim   *anim.Manager[color.Color]
	color  color.Color
	tex    *assets.Texture
}

func newPlayer(bounds gfx.Rect, keys controls, tex *assets.Texture) Player {
	m := anim.NewManager[color.Color]()

	idle := anim.New[color.Color](gfx.White)
	blink := anim.New[color.Color](gfx.Red, color.RGBA{R: 255, G: 255, A: 255}, gfx.Green)
	blink.SetDelay(150 * time.Millisecond)

	// Names are fixed and distinct.
	_ = m.Add("idle", idle)
	_ = m.Add("blink", blink)
	_ = m.SetCurrent("idle")

	return Player{
		X:      bounds.W/2 - playerSize/2,
		Y:      bounds.H/2 - playerSize/2,
		Speed:  240,
		keys:   keys,
		bounds: bounds,
		anim:   m,
		color:  gfx.White,
		tex:    tex,
	}
}

// ToggleAnimation switches between the idle and blinking animations.
func (p *Player) ToggleAnimation() string {
	next := "blink"
	if p.anim.Current() == "blink" {
		next = "idle"
	}
	_ = p.anim.SetCurrent(next)
	return next
}

func (p *Player) Update(f *sprite.UpdateFrame) {
	kb := f.Input.Keyboard
	var dx, dy float64
	if kb.IsDown(p.keys.Left) {
		dx--
	}
	if kb.IsDown(p.keys.Right) {
		dx++
	}
	if kb.IsDown(p.keys.Up) {
		dy--
	}
	if kb.IsDown(p.keys.Down) {
		dy++
	}
	p.X = clamp(p.X+dx*p.Speed*f.DeltaTime, p.bounds.X, p.bounds.X+p.bounds.W-playerSize)
	p.Y = clamp(p.Y+dy*p.Speed*f.DeltaTime, p.bounds.Y, p.bounds.Y+p.bounds.H-playerSize)

	if c, ok := p.anim.RunCurrent(); ok {
		p.color = c
	}

	for h, e := range sprite.Each[Enemy](f.Registry) {
		if sprite.Overlaps(p, e) {
			p.Score++
			f.Commands.Remove(h)
			sprite.Spawn(f.Commands, randomEnemy(p.bounds))
		}
	}
}

func (p *Player) Draw(dst gfx.Renderer) {
	if p.tex != nil {
		w, h := p.tex.Size()
		opts := gfx.At(p.X, p.Y)
		if w > 0 && h > 0 {
			opts.ScaleX, opts.ScaleY = playerSize/float64(w), playerSize/float64(h)
		}
		dst.DrawImage(p.tex, opts)
		dst.DrawRect(gfx.Line, sprite.Bounds(p), gfx.DefaultStyle().WithColor(p.color))
		return
	}
	dst.DrawRect(gfx.Fill, sprite.Bounds(p), gfx.DefaultStyle().WithColor(p.color))
}

func (p *Player) Position() (float64, float64) { return p.X, p.Y }
func (p *Player) Size() (float64, float64)     { return playerSize, playerSize }
func (p *Player) Layer() int                   { return 1 }

// Enemy drifts and bounces off the play area edges.
type Enemy struct {
	X, Y   float64
	VX, VY float64
	Color  color.RGBA

	bounds gfx.Rect
}

func randomEnemy(bounds gfx.Rect) Enemy {
	return Enemy{
		X:      bounds.X + rand.Float64()*(bounds.W-enemySize),
		Y:      bounds.Y + rand.Float64()*(bounds.H-enemySize),
		VX:     (rand.Float64()*2 - 1) * 120,
		VY:     (rand.Float64()*2 - 1) * 120,
		Color:  pastelColors[rand.IntN(len(pastelColors))],
		bounds: bounds,
	}
}

func (e *Enemy) Update(f *sprite.UpdateFrame) {
	e.X += e.VX * f.DeltaTime
	e.Y += e.VY * f.DeltaTime
	if e.X < e.bounds.X || e.X > e.bounds.X+e.bounds.W-enemySize {
		e.VX = -e.VX
		e.X = clamp(e.X, e.bounds.X, e.bounds.X+e.bounds.W-enemySize)
	}
	if e.Y < e.bounds.Y || e.Y > e.bounds.Y+e.bounds.H-enemySize {
		e.VY = -e.VY
		e.Y = clamp(e.Y, e.bounds.Y, e.bounds.Y+e.bounds.H-enemySize)
	}
}

func (e *Enemy) Draw(dst gfx.Renderer) {
	dst.DrawRect(gfx.Fill, sprite.Bounds(e), gfx.DefaultStyle().WithColor(e.Color))
}

func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }
func (e *Enemy) Size() (float64, float64)     { return enemySize, enemySize }

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
