package secretseal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/crypto/chacha20poly1305"
)

// Algorithm identifies the AEAD used for a sealed blob.
type Algorithm byte

const (
	// AlgAESGCM is AES-256-GCM.
	AlgAESGCM Algorithm = 0x01

	// AlgChaCha20 is ChaCha20-Poly1305.
	AlgChaCha20 Algorithm = 0x02
)

// KeySize is the required sealing key length in bytes.
const KeySize = chacha20poly1305.KeySize

// label binds ciphertexts to this format as AEAD additional data.
var label = []byte("flakely.secret.v1")

// Seal encrypts secret under key, selecting the platform-preferred
// algorithm. Key must be exactly 32 bytes.
func Seal(key, secret []byte) ([]byte, error) {
	return SealAs(preferredAlgorithm(), key, secret)
}

// SealAs encrypts secret under key with a specific algorithm.
func SealAs(alg Algorithm, key, secret []byte) ([]byte, error) {
	aead, err := newAEAD(alg, key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// Blob: algorithm byte, nonce, ciphertext.
	blob := make([]byte, 0, 1+len(nonce)+len(secret)+aead.Overhead())
	blob = append(blob, byte(alg))
	blob = append(blob, nonce...)
	blob = aead.Seal(blob, nonce, secret, label)
	return blob, nil
}

// Open decrypts a sealed blob with key. It fails on truncated input,
// an unknown algorithm byte, or a key that does not match.
func Open(key, blob []byte) ([]byte, error) {
	if len(blob) < 2 {
		return nil, errors.New("secretseal: blob too short")
	}

	aead, err := newAEAD(Algorithm(blob[0]), key)
	if err != nil {
		return nil, err
	}

	rest := blob[1:]
	if len(rest) < aead.NonceSize() {
		return nil, errors.New("secretseal: blob shorter than nonce")
	}
	nonce := rest[:aead.NonceSize()]
	ciphertext := rest[aead.NonceSize():]

	secret, err := aead.Open(nil, nonce, ciphertext, label)
	if err != nil {
		return nil, fmt.Errorf("secretseal: open: %w", err)
	}
	return secret, nil
}

// newAEAD constructs the AEAD for an algorithm, validating the key.
func newAEAD(alg Algorithm, key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("secretseal: sealing key must be %d bytes, got %d", KeySize, len(key))
	}

	switch alg {
	case AlgAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case AlgChaCha20:
		return chacha20poly1305.New(key)
	default:
		return nil, fmt.Errorf("secretseal: unknown algorithm 0x%02x", byte(alg))
	}
}

// preferredAlgorithm picks the cipher for this platform.
// Go's crypto/aes uses hardware acceleration on amd64 and arm64;
// elsewhere ChaCha20 is the faster, safer default.
func preferredAlgorithm() Algorithm {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return AlgAESGCM
	default:
		return AlgChaCha20
	}
}
