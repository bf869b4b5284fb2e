package sprite_test

import (
	"testing"

	"github.com/plus3/game2d/gfx"
	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/sprite"
	"github.com/stretchr/testify/assert"
)

// Spawner adds an enemy on its first update and removes itself on its second.
type Spawner struct {
	Self  sprite.Handle
	ticks int
}

func (s *Spawner) Update(f *sprite.UpdateFrame) {
	s.ticks++
	switch s.ticks {
	case 1:
		sprite.Spawn(f.Commands, Enemy{Name: "spawned"})
	case 2:
		f.Commands.Remove(s.Self)
	}
}

func (s *Spawner) Draw(gfx.Renderer)            {}
func (s *Spawner) Position() (float64, float64) { return 0, 0 }
func (s *Spawner) Size() (float64, float64)     { return 0, 0 }

func TestCommandsAppliedAfterUpdate(t *testing.T) {
	r := sprite.NewRegistry()
	h := sprite.Add(r, Spawner{})
	sprite.Get[Spawner](r, h).Self = h
	in := input.NewState()

	r.UpdateAll(0.01, in, nil)

	enemies := sprite.Bucket[Enemy](r)
	if assert.Len(t, enemies, 1) {
		assert.Equal(t, "spawned", enemies[0].Name)
		assert.Equal(t, 0, enemies[0].Updates, "spawned sprites start next frame")
	}
	assert.Equal(t, 0, r.Commands().Len())

	r.UpdateAll(0.01, in, nil)
	assert.Equal(t, 0, sprite.Count[Spawner](r))
	assert.Equal(t, 1, sprite.Bucket[Enemy](r)[0].Updates)
}

func TestCommandsFlushOrder(t *testing.T) {
	r := sprite.NewRegistry()
	h := sprite.Add(r, Enemy{Name: "old"})
	cmds := r.Commands()

	var seen []int
	cmds.Defer(func() { seen = append(seen, sprite.Count[Enemy](r)) })
	sprite.Spawn(cmds, Enemy{Name: "new"})
	cmds.Remove(h)
	assert.Equal(t, 3, cmds.Len())

	cmds.Flush(r)

	// Removals and spawns land before deferred funcs run.
	assert.Equal(t, []int{1}, seen)
	assert.Equal(t, "new", sprite.Bucket[Enemy](r)[0].Name)
	assert.Equal(t, 0, cmds.Len())
}
