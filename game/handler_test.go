package game_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/plus3/game2d/game"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pong implements only some of the handler interfaces.
type pong struct {
	loaded  bool
	updates int
	keys    []input.Key
}

func (p *pong) Load(*game.Context) error { p.loaded = true; return nil }

func (p *pong) Update(*game.Context, float64) { p.updates++ }

func (p *pong) KeyPressed(_ *game.Context, k input.Key) { p.keys = append(p.keys, k) }

func TestStructHandler(t *testing.T) {
	p := platform.NewScripted(64, 64).
		At(0, platform.Down(input.KeyUp)).
		At(2, platform.QuitEvent())
	h := &pong{}

	require.NoError(t, game.New(p).WithHandler(h).Run())

	assert.True(t, h.loaded)
	assert.Equal(t, 2, h.updates)
	assert.Equal(t, []input.Key{input.KeyUp}, h.keys)
}

func TestWithHandlerReplacesFuncs(t *testing.T) {
	p := platform.NewScripted(64, 64).At(1, platform.QuitEvent())
	funcUpdates := 0
	h := &pong{}

	l := game.New(p).
		OnUpdate(func(*game.Context, float64) { funcUpdates++ }).
		WithHandler(h)
	require.NoError(t, l.Run())

	assert.Equal(t, 0, funcUpdates)
	assert.Equal(t, 1, h.updates)
}

func TestFuncsZeroValueIsNoop(t *testing.T) {
	var f game.Funcs
	ctx := &game.Context{}

	assert.NoError(t, f.Load(ctx))
	assert.NotPanics(t, func() {
		f.Update(ctx, 1)
		f.Draw(ctx)
		f.KeyPressed(ctx, input.KeyA)
		f.Quit(ctx)
	})
}

func TestDtClampProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("dt never exceeds 1/maxFPS", prop.ForAll(
		func(elapsedMs int, fps int) bool {
			clock := newManualClock()
			var got float64
			l := game.New(platform.NewScripted(8, 8)).
				WithClock(clock).
				WithMaxFPS(float64(fps)).
				OnUpdate(func(_ *game.Context, dt float64) { got = dt })
			if err := l.Start(); err != nil {
				return false
			}
			clock.Advance(time.Duration(elapsedMs) * time.Millisecond)
			l.Step()
			return got >= 0 && got <= 1/float64(fps)
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 240),
	))

	properties.TestingRun(t)
}
