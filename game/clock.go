package game

import "time"

// Clock is the loop's source of time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock.
func SystemClock() Clock {
	return systemClock{}
}
