package anim_test

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/plus3/game2d/anim"
	"github.com/stretchr/testify/assert"
)

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func runFrame(t *testing.T, a *anim.Animation[int]) int {
	t.Helper()
	frame, ok := a.Run()
	assert.True(t, ok)
	return frame
}

func TestRunWrapsWithoutDelay(t *testing.T) {
	a := anim.New(1, 2, 3)

	got := []int{runFrame(t, a), runFrame(t, a), runFrame(t, a), runFrame(t, a)}
	assert.Equal(t, []int{1, 2, 3, 1}, got)
}

func TestRunEmpty(t *testing.T) {
	a := anim.New[int]()

	_, ok := a.Run()
	assert.False(t, ok)
	_, ok = a.Frame()
	assert.False(t, ok)
	assert.Equal(t, -1, a.Index())
}

func TestRunGatedByDelay(t *testing.T) {
	clock := newManualClock()
	a := anim.New("walk-1", "walk-2").WithClock(clock)
	a.SetDelay(100 * time.Millisecond)

	first, _ := a.Run()
	clock.Advance(50 * time.Millisecond)
	second, _ := a.Run()
	clock.Advance(100 * time.Millisecond)
	third, _ := a.Run()

	assert.Equal(t, "walk-1", first)
	assert.Equal(t, "walk-1", second)
	assert.Equal(t, "walk-2", third)
}

func TestDelayMeasuredInWholeMilliseconds(t *testing.T) {
	clock := newManualClock()
	a := anim.New(0, 1).WithClock(clock)
	a.SetDelay(10 * time.Millisecond)

	a.Run()
	clock.Advance(9*time.Millisecond + 999*time.Microsecond)
	frame, _ := a.Run()
	assert.Equal(t, 0, frame)

	clock.Advance(time.Microsecond)
	frame, _ = a.Run()
	assert.Equal(t, 1, frame)
}

func TestSubMillisecondDelayAdvancesEveryCall(t *testing.T) {
	clock := newManualClock()
	a := anim.New(0, 1, 2).WithClock(clock)
	a.SetDelay(500 * time.Microsecond)

	assert.Equal(t, 0, runFrame(t, a))
	assert.Equal(t, 1, runFrame(t, a))
	assert.Equal(t, 2, runFrame(t, a))
}

func TestClockRegressionHoldsFrame(t *testing.T) {
	clock := newManualClock()
	a := anim.New(0, 1).WithClock(clock)
	a.SetDelay(100 * time.Millisecond)

	a.Run()
	clock.Advance(-time.Hour)
	frame, ok := a.Run()
	assert.True(t, ok)
	assert.Equal(t, 0, frame)
}

func TestRestartOverridesDelay(t *testing.T) {
	clock := newManualClock()
	a := anim.New(0, 1, 2).WithClock(clock)

	a.Run()
	a.Run()
	assert.Equal(t, 1, a.Index())

	a.SetDelay(time.Second)
	a.Restart()
	assert.Equal(t, -1, a.Index())

	frame, _ := a.Run()
	assert.Equal(t, 0, frame)

	// Gate applies again from here.
	frame, _ = a.Run()
	assert.Equal(t, 0, frame)
}

func TestClearDelay(t *testing.T) {
	clock := newManualClock()
	a := anim.New(0, 1).WithClock(clock)
	a.SetDelay(time.Second)
	a.Run()

	a.ClearDelay()
	assert.Equal(t, time.Duration(0), a.Delay())
	frame, _ := a.Run()
	assert.Equal(t, 1, frame)
}

func TestFramePeeksWithoutAdvancing(t *testing.T) {
	a := anim.New(5, 6)
	a.Run()

	frame, ok := a.Frame()
	assert.True(t, ok)
	assert.Equal(t, 5, frame)
	assert.Equal(t, 0, a.Index())
}

func TestAddFrames(t *testing.T) {
	a := anim.New[int]()
	a.Add(1)
	a.Add(2, 3)
	assert.Equal(t, 3, a.Len())
}

func TestAnimationWrapProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("n-th run without delay shows frame (n-1) mod len", prop.ForAll(
		func(length int, runs int) bool {
			frames := make([]int, length)
			for i := range frames {
				frames[i] = i
			}
			a := anim.New(frames...)
			for n := 1; n <= runs; n++ {
				frame, ok := a.Run()
				if !ok || frame != (n-1)%length {
					return false
				}
				if a.Index() < 0 || a.Index() >= length {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 16),
		gen.IntRange(1, 64),
	))

	properties.TestingRun(t)
}
