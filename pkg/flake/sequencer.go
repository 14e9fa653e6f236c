package flake

import (
	"math"
	"sync"
)

// sequencer hands out the (tick, counter) pair embedded in each token.
// lastTick starts at the zero sentinel, meaning no tick observed yet.
// All reads and writes of the pair happen under mu; two concurrent
// mints can never observe the same state.
type sequencer struct {
	mu       sync.Mutex
	clock    Clock
	lastTick int64
	counter  uint16
}

// seqResult is the outcome of advancing the sequencer by one mint.
type seqResult struct {
	tick      int64
	counter   uint16
	wrapped   bool
	regressed bool
}

// next derives the current whole-second tick and advances the counter
// for it. An equal tick increments the counter (wrapping at 65536 mints
// within one tick); any other tick, including one in the past when the
// wall clock moves backwards, stores the new tick and resets the
// counter to zero.
//
// In strict mode a wrap or a regression fails fast without mutating
// state, so the caller can retry once the clock advances.
func (s *sequencer) next(strict bool) (seqResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tick := s.clock.Now().Unix()

	if tick == s.lastTick {
		if strict && s.counter == math.MaxUint16 {
			return seqResult{}, ErrCounterOverflow
		}
		s.counter++
		return seqResult{
			tick:    tick,
			counter: s.counter,
			wrapped: s.counter == 0,
		}, nil
	}

	regressed := s.lastTick != 0 && tick < s.lastTick
	if strict && regressed {
		return seqResult{}, ErrClockRegression.WithDetails(
			"current tick is older than the last observed tick")
	}

	s.lastTick = tick
	s.counter = 0
	return seqResult{tick: tick, counter: 0, regressed: regressed}, nil
}
