package flakeconf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"device":    7,
		"secret":    "abc",
		"strict":    true,
		"log.level": "debug",
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	var cfg Config
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if cfg.Device == nil || *cfg.Device != 7 {
		t.Errorf("Device = %v, want 7", cfg.Device)
	}
	if cfg.Process != nil {
		t.Errorf("Process = %v, want unset", cfg.Process)
	}
	if cfg.Secret != "abc" {
		t.Errorf("Secret = %q, want abc", cfg.Secret)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flakely.yaml")
	yaml := `
device: 11
process: 22
secret: "file-secret"
log:
  enabled: true
  level: warn
  format: text
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Device == nil || *cfg.Device != 11 {
		t.Errorf("Device = %v, want 11", cfg.Device)
	}
	if cfg.Process == nil || *cfg.Process != 22 {
		t.Errorf("Process = %v, want 22", cfg.Process)
	}
	if cfg.Secret != "file-secret" {
		t.Errorf("Secret = %q", cfg.Secret)
	}
	if !cfg.Log.Enabled || cfg.Log.Level != "warn" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flakely.yaml")
	if err := os.WriteFile(path, []byte("secret: from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FLAKELY_SECRET", "from-env")
	t.Setenv("FLAKELY_STRICT", "true")

	var cfg Config
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Secret != "from-env" {
		t.Errorf("Secret = %q, want env value to win", cfg.Secret)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true from env")
	}
}

func TestLoader_EnvFlatKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret")
	if err := os.WriteFile(path, []byte("s3cr3t\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// Multi-word flat keys must not be split into nested keys.
	t.Setenv("FLAKELY_SECRET_FILE", path)
	t.Setenv("FLAKELY_LOG_LEVEL", "debug")

	var cfg Config
	if err := NewLoader().Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SecretFile != path {
		t.Errorf("SecretFile = %q, want %q", cfg.SecretFile, path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	t.Setenv("MYAPP_SECRET", "custom")

	var cfg Config
	if err := NewLoader(WithEnvPrefix("MYAPP_")).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Secret != "custom" {
		t.Errorf("Secret = %q, want custom", cfg.Secret)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	var cfg Config
	err := NewLoader(WithConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))).Load(&cfg)
	if err == nil {
		t.Fatal("Load() with a missing file expected error, got nil")
	}
}
