package flake

import (
	"crypto/sha256"
	"crypto/subtle"
)

// signPayload computes a token signature: SHA-256 over the payload
// bytes with the secret appended. The payload-first ordering is part of
// the wire contract; verifiers holding the same secret recompute the
// digest byte-for-byte.
//
// Note this is plain concatenation, not an HMAC construction. New
// deployments that do not need compatibility with existing verifiers
// should consider a standard keyed MAC instead.
func signPayload(payload, secret []byte) []byte {
	h := sha256.New()
	h.Write(payload)
	h.Write(secret)
	return h.Sum(nil)
}

// verifySignature recomputes the expected signature for payload and
// compares it against signature in constant time.
func verifySignature(payload, secret, signature []byte) bool {
	expected := signPayload(payload, secret)
	return subtle.ConstantTimeCompare(expected, signature) == 1
}
