package flake

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"os"

	"github.com/yndnr/flakely-go/pkg/flakelog"
)

// Generator mints and validates signed Flakely tokens. Its identity
// (device, process, secret) is fixed at construction; only the
// tick/counter sequencer mutates afterwards, under a mutex.
//
// Distinct generators never coordinate: cross-instance uniqueness
// relies on distinct device/process markers chosen at deployment time.
type Generator struct {
	device  uint32
	process uint32
	secret  []byte
	strict  bool

	seq     sequencer
	logger  flakelog.Logger
	metrics Recorder
}

// New constructs a Generator. An omitted device marker is sampled from
// crypto/rand, an omitted process marker defaults to the OS process
// id (truncated to 32 bits), and an omitted secret is empty.
func New(opts ...Option) (*Generator, error) {
	cfg := settings{
		clock:   systemClock{},
		logger:  flakelog.Nop(),
		metrics: nopRecorder{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var device uint32
	if cfg.device != nil {
		device = *cfg.device
	} else {
		var buf [DeviceSize]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, ErrEntropy.WithCause(err)
		}
		device = binary.LittleEndian.Uint32(buf[:])
	}

	process := uint32(os.Getpid())
	if cfg.process != nil {
		process = *cfg.process
	}

	// Copy the secret so later mutation by the caller cannot change
	// the generator's identity.
	secret := make([]byte, len(cfg.secret))
	copy(secret, cfg.secret)

	g := &Generator{
		device:  device,
		process: process,
		secret:  secret,
		strict:  cfg.strict,
		seq:     sequencer{clock: cfg.clock},
		logger:  cfg.logger,
		metrics: cfg.metrics,
	}

	g.logger.Debug("flake generator constructed",
		"device", device,
		"process", process,
		"keyed", len(secret) > 0,
		"strict", cfg.strict,
	)

	return g, nil
}

// Device returns the generator's fixed device marker.
func (g *Generator) Device() uint32 { return g.device }

// Process returns the generator's fixed process marker.
func (g *Generator) Process() uint32 { return g.process }

// Generate mints one token for the given identifier and returns its
// 50-byte wire form. The identifier must fit the 4-byte field;
// anything wider fails with ErrOutOfRange.
func (g *Generator) Generate(identifier uint64) ([]byte, error) {
	if identifier > MaxIdentifier {
		return nil, ErrOutOfRange.WithDetails(
			fmt.Sprintf("identifier %d exceeds the %d-byte field", identifier, IdentifierSize))
	}

	res, err := g.seq.next(g.strict)
	if err != nil {
		return nil, err
	}
	if res.wrapped {
		g.logger.Warn("intra-tick counter wrapped", "tick", res.tick)
		g.metrics.CounterWrapped()
	}
	if res.regressed {
		g.logger.Warn("wall clock moved backwards, counter reset", "tick", res.tick)
		g.metrics.ClockRegressed()
	}

	payload := Payload{
		Identifier: uint32(identifier),
		Counter:    res.counter,
		Process:    g.process,
		Device:     g.device,
		Tick:       uint32(res.tick),
	}.Encode()

	token := make([]byte, 0, TokenSize)
	token = append(token, payload...)
	token = append(token, signPayload(payload, g.secret)...)

	g.metrics.TokenMinted()
	return token, nil
}

// GenerateNumeric mints one token and returns its numeric form: the
// 50 token bytes interpreted as a little-endian unsigned big integer.
func (g *Generator) GenerateNumeric(identifier uint64) (*big.Int, error) {
	token, err := g.Generate(identifier)
	if err != nil {
		return nil, err
	}
	return TokenToNumeric(token), nil
}

// Validate checks a token's signature against this generator's secret.
// A wrong signature is a normal negative result (false, nil); only a
// token that is not exactly 50 bytes is an error.
func (g *Generator) Validate(token []byte) (bool, error) {
	if len(token) != TokenSize {
		return false, ErrMalformedToken.WithDetails(
			fmt.Sprintf("token is %d bytes, want %d", len(token), TokenSize))
	}
	ok := verifySignature(token[:PayloadSize], g.secret, token[PayloadSize:])
	g.metrics.TokenValidated(ok)
	return ok, nil
}

// ValidateNumeric is Validate for the numeric token form. Values that
// are negative or not representable in 50 bytes fail with
// ErrMalformedToken.
func (g *Generator) ValidateNumeric(token *big.Int) (bool, error) {
	raw, err := NumericToToken(token)
	if err != nil {
		return false, err
	}
	return g.Validate(raw)
}
