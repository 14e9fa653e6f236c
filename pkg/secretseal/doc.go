// Package secretseal protects generator secrets at rest.
//
// A sealed blob is authenticated ciphertext produced with a 32-byte
// sealing key, so a shared secret can live in a configuration file
// without being readable from it. The cipher is selected per platform:
//
//   - AES-256-GCM where AES hardware acceleration is expected
//   - ChaCha20-Poly1305 otherwise
//
// Blob layout: one algorithm byte, then the nonce-prefixed AEAD
// ciphertext. Opening accepts either algorithm regardless of the local
// platform, so blobs are portable across architectures.
package secretseal
