package flake

// Recorder receives counters for notable generator events.
// Implementations must be safe for concurrent use. The flakemetric
// package provides a Prometheus-backed implementation.
type Recorder interface {
	// TokenMinted is called once per successfully generated token.
	TokenMinted()

	// TokenValidated is called once per structurally valid token
	// presented for validation, with the signature check outcome.
	TokenValidated(ok bool)

	// CounterWrapped is called when the intra-tick counter wraps back
	// to zero, reintroducing counter values within the same tick.
	CounterWrapped()

	// ClockRegressed is called when a mint observes a tick older than
	// the previous one.
	ClockRegressed()
}

// nopRecorder discards all events. It is the default.
type nopRecorder struct{}

func (nopRecorder) TokenMinted()        {}
func (nopRecorder) TokenValidated(bool) {}
func (nopRecorder) CounterWrapped()     {}
func (nopRecorder) ClockRegressed()     {}
