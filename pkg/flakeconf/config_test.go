package flakeconf

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/yndnr/flakely-go/pkg/flake"
	"github.com/yndnr/flakely-go/pkg/secretseal"
)

func uint32p(v uint32) *uint32 { return &v }

func TestConfig_NewGenerator(t *testing.T) {
	cfg := &Config{
		Device:  uint32p(77),
		Process: uint32p(88),
		Secret:  "inline-secret",
	}

	g, err := cfg.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	if g.Device() != 77 || g.Process() != 88 {
		t.Errorf("identity = (%d, %d), want (77, 88)", g.Device(), g.Process())
	}

	// Tokens must verify against an identically-keyed generator.
	token, err := g.Generate(1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	verifier, err := flake.New(flake.WithSecretString("inline-secret"))
	if err != nil {
		t.Fatal(err)
	}
	ok, err := verifier.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !ok {
		t.Error("Validate() = false across identically-configured secrets")
	}
}

func TestConfig_SecretFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secret")
	if err := os.WriteFile(path, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		// File wins over inline.
		Secret:     "inline",
		SecretFile: path,
	}

	g, err := cfg.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	token, err := g.Generate(2)
	if err != nil {
		t.Fatal(err)
	}

	// The trailing newline must have been stripped.
	verifier, err := flake.New(flake.WithSecretString("file-secret"))
	if err != nil {
		t.Fatal(err)
	}
	ok, err := verifier.Validate(token)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Validate() = false; secret file was not read as expected")
	}
}

func TestConfig_SealedSecret(t *testing.T) {
	key := make([]byte, secretseal.KeySize)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}

	blob, err := secretseal.Seal(key, []byte("rotated-secret"))
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	dir := t.TempDir()
	keyPath := filepath.Join(dir, "seal.key")
	if err := os.WriteFile(keyPath, key, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		SecretSealed: hex.EncodeToString(blob),
		SealKeyFile:  keyPath,
	}

	g, err := cfg.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	token, err := g.Generate(3)
	if err != nil {
		t.Fatal(err)
	}

	verifier, err := flake.New(flake.WithSecretString("rotated-secret"))
	if err != nil {
		t.Fatal(err)
	}
	ok, err := verifier.Validate(token)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Validate() = false; sealed secret did not unseal to the original")
	}
}

func TestConfig_SealedSecretWithoutKeyFile(t *testing.T) {
	cfg := &Config{SecretSealed: "deadbeef"}
	if _, err := cfg.Options(); err == nil {
		t.Error("Options() expected error without seal_key_file, got nil")
	}
}

func TestConfig_StrictOption(t *testing.T) {
	cfg := &Config{Strict: true}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}

	g, err := flake.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := g.Generate(1); err != nil {
		t.Errorf("Generate() error = %v", err)
	}
}

func TestLoadConfig_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flakely.yaml")
	yaml := `
device: 5
secret: e2e
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(WithConfigFile(path))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	g, err := cfg.NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}
	if g.Device() != 5 {
		t.Errorf("Device() = %d, want 5", g.Device())
	}
}
