// Package flake generates signed, globally-distinguishable identifiers.
//
// Each token embeds a caller-supplied identifier together with enough
// generator state (wall-clock tick, intra-tick counter, process and
// device markers) to make collisions between concurrently running
// generators practically impossible, and carries a keyed SHA-256
// digest so any holder of the shared secret can verify the token was
// minted by a legitimate generator.
//
// Token Format (50 bytes, all integers little-endian):
//
//   - identifier: 4 bytes, caller-supplied discriminator
//   - counter:    2 bytes, intra-tick sequence number
//   - process:    4 bytes, generator's process marker
//   - device:     4 bytes, generator's device marker
//   - tick:       4 bytes, seconds since epoch, truncated
//   - signature: 32 bytes, SHA-256 over the 18 payload bytes with the
//     secret appended
//
// The numeric form of a token is the little-endian big-integer
// interpretation of the same 50 bytes.
//
// Security:
//
//   - Uses crypto/rand for the default device marker
//   - Signature comparison is constant-time
//   - An empty secret degrades the signature to an unkeyed checksum;
//     callers that need tamper resistance must supply a secret
//
// Generators are safe for concurrent use; the tick/counter pair is
// advanced under a mutex so no two mints can observe the same state.
package flake
