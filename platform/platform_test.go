package platform_test

import (
	"sync"
	"testing"

	"github.com/plus3/game2d/input"
	"github.com/plus3/game2d/platform"
	"github.com/stretchr/testify/assert"
)

func TestScriptedReplaysByPoll(t *testing.T) {
	p := platform.NewScripted(64, 64).
		At(0, platform.Down(input.KeyA)).
		At(2, platform.Up(input.KeyA), platform.QuitEvent())

	var buf []platform.Event
	buf = p.PollEvents(buf[:0])
	assert.Equal(t, []platform.Event{platform.Down(input.KeyA)}, buf)

	buf = p.PollEvents(buf[:0])
	assert.Empty(t, buf)

	buf = p.PollEvents(buf[:0])
	assert.Equal(t, []platform.Event{platform.Up(input.KeyA), platform.QuitEvent()}, buf)
	assert.Equal(t, 3, p.Polls())
}

func TestScriptedPushFromGoroutines(t *testing.T) {
	p := platform.NewScripted(64, 64)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Push(platform.Move(1, 2))
		}()
	}
	wg.Wait()

	events := p.PollEvents(nil)
	assert.Len(t, events, 10)
	assert.Empty(t, p.PollEvents(nil), "pushed events are delivered once")
}

func TestScriptedPushAfterScript(t *testing.T) {
	p := platform.NewScripted(64, 64).At(0, platform.Down(input.KeyB))
	p.Push(platform.QuitEvent())

	events := p.PollEvents(nil)
	assert.Equal(t, []platform.Event{platform.Down(input.KeyB), platform.QuitEvent()}, events)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "key-down Space", platform.Down(input.KeySpace).String())
	assert.Equal(t, "key-up A", platform.Up(input.KeyA).String())
	assert.Equal(t, "mouse-motion 3,4.5", platform.Move(3, 4.5).String())
	assert.Equal(t, "quit", platform.QuitEvent().String())
	assert.Equal(t, "EventKind(9)", platform.EventKind(9).String())
}
