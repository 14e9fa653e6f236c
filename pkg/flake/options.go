package flake

import (
	"github.com/yndnr/flakely-go/pkg/flakelog"
)

// settings collects construction-time configuration before defaults
// are applied.
type settings struct {
	device  *uint32
	process *uint32
	secret  []byte
	clock   Clock
	logger  flakelog.Logger
	metrics Recorder
	strict  bool
}

// Option configures a Generator at construction time.
type Option func(*settings)

// WithDevice fixes the generator's device marker. When omitted, a
// cryptographically random value is sampled once at construction.
func WithDevice(device uint32) Option {
	return func(s *settings) {
		d := device
		s.device = &d
	}
}

// WithProcess fixes the generator's process marker. When omitted, the
// operating system process id is used.
func WithProcess(process uint32) Option {
	return func(s *settings) {
		p := process
		s.process = &p
	}
}

// WithSecret sets the shared secret mixed into token signatures. The
// secret is shared out-of-band with verifiers; it is never embedded in
// a token. Without one, signatures degrade to an unkeyed checksum.
func WithSecret(secret []byte) Option {
	return func(s *settings) {
		s.secret = secret
	}
}

// WithSecretString is WithSecret for string-typed secrets.
func WithSecretString(secret string) Option {
	return WithSecret([]byte(secret))
}

// WithClock replaces the wall-clock source. Intended for tests.
func WithClock(clock Clock) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithLogger sets the logger the generator emits through.
// The default discards everything.
func WithLogger(logger flakelog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorder for generator events.
// The default discards everything.
func WithMetrics(recorder Recorder) Option {
	return func(s *settings) {
		s.metrics = recorder
	}
}

// WithStrictSequencing makes Generate fail fast with
// ErrCounterOverflow or ErrClockRegression instead of silently
// wrapping the counter or accepting an out-of-order tick. The default
// preserves the historical wraparound behavior bit-for-bit.
func WithStrictSequencing() Option {
	return func(s *settings) {
		s.strict = true
	}
}
