package flake

import "time"

// Clock abstracts the wall-clock read behind token ticks, so that
// tick-dependent behavior is testable.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
