package flakeconf

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/yndnr/flakely-go/pkg/flake"
	"github.com/yndnr/flakely-go/pkg/flakelog"
	"github.com/yndnr/flakely-go/pkg/secretseal"
)

// Config is the external configuration for one generator.
//
// Identity fields are pointers so that "unset" is distinguishable from
// zero: an unset device is randomly sampled and an unset process
// defaults to the OS process id, matching flake.New.
type Config struct {
	// Device is the fixed device marker (optional).
	Device *uint32 `koanf:"device"`

	// Process is the fixed process marker (optional).
	Process *uint32 `koanf:"process"`

	// Secret is the shared signing secret, inline (optional).
	Secret string `koanf:"secret"`

	// SecretFile is a path to read the secret from. A single trailing
	// newline is stripped. Takes precedence over Secret.
	SecretFile string `koanf:"secret_file"`

	// SecretSealed is a hex-encoded secretseal blob. Requires
	// SealKeyFile. Takes precedence over SecretFile and Secret.
	SecretSealed string `koanf:"secret_sealed"`

	// SealKeyFile is a path to the 32-byte sealing key used to open
	// SecretSealed. The file holds the raw key bytes and is read
	// verbatim.
	SealKeyFile string `koanf:"seal_key_file"`

	// Strict enables fail-fast sequencing (counter overflow and clock
	// regression become errors instead of silent resets).
	Strict bool `koanf:"strict"`

	// Log configures the logger handed to the generator.
	Log LogConfig `koanf:"log"`
}

// LogConfig configures generator logging.
type LogConfig struct {
	// Enabled turns generator logging on. Off by default: a library
	// should not write to stderr unless asked to.
	Enabled bool `koanf:"enabled"`

	// Level is the minimum log level (debug, info, warn, error).
	Level string `koanf:"level"`

	// Format is the output format (json, text).
	Format string `koanf:"format"`
}

// LoadConfig loads a Config through a Loader built from opts.
func LoadConfig(opts ...Option) (*Config, error) {
	var cfg Config
	if err := NewLoader(opts...).Load(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options resolves the configuration into flake options.
func (c *Config) Options() ([]flake.Option, error) {
	opts := make([]flake.Option, 0, 5)

	if c.Device != nil {
		opts = append(opts, flake.WithDevice(*c.Device))
	}
	if c.Process != nil {
		opts = append(opts, flake.WithProcess(*c.Process))
	}

	secret, err := c.resolveSecret()
	if err != nil {
		return nil, err
	}
	if secret != nil {
		opts = append(opts, flake.WithSecret(secret))
	}

	if c.Strict {
		opts = append(opts, flake.WithStrictSequencing())
	}

	if c.Log.Enabled {
		opts = append(opts, flake.WithLogger(flakelog.New(flakelog.Config{
			Level:  c.Log.Level,
			Format: c.Log.Format,
		})))
	}

	return opts, nil
}

// NewGenerator builds a generator from the configuration. Extra
// options are applied after the configured ones, so callers can still
// inject a clock or metrics recorder.
func (c *Config) NewGenerator(extra ...flake.Option) (*flake.Generator, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return flake.New(append(opts, extra...)...)
}

// resolveSecret picks the secret source by precedence:
// sealed > file > inline. A nil result means no secret is configured.
func (c *Config) resolveSecret() ([]byte, error) {
	switch {
	case c.SecretSealed != "":
		if c.SealKeyFile == "" {
			return nil, errors.New("flakeconf: secret_sealed set without seal_key_file")
		}
		key, err := os.ReadFile(c.SealKeyFile)
		if err != nil {
			return nil, fmt.Errorf("flakeconf: read seal key: %w", err)
		}
		blob, err := hex.DecodeString(c.SecretSealed)
		if err != nil {
			return nil, fmt.Errorf("flakeconf: decode sealed secret: %w", err)
		}
		// The key is raw bytes, not text; a trailing 0x0A could be part
		// of the key itself, so nothing is stripped.
		secret, err := secretseal.Open(key, blob)
		if err != nil {
			return nil, fmt.Errorf("flakeconf: unseal secret: %w", err)
		}
		return secret, nil

	case c.SecretFile != "":
		raw, err := os.ReadFile(c.SecretFile)
		if err != nil {
			return nil, fmt.Errorf("flakeconf: read secret file: %w", err)
		}
		return trimTrailingNewline(raw), nil

	case c.Secret != "":
		return []byte(c.Secret), nil

	default:
		return nil, nil
	}
}

// trimTrailingNewline strips one trailing LF or CRLF. Editors add one
// to key and secret files; anything beyond that is kept verbatim.
func trimTrailingNewline(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte("\n"))
	b = bytes.TrimSuffix(b, []byte("\r"))
	return b
}
