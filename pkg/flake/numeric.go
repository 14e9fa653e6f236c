package flake

import (
	"fmt"
	"math/big"
)

// TokenToNumeric interprets a token's bytes as a little-endian
// unsigned big integer. It does not check the signature.
func TokenToNumeric(token []byte) *big.Int {
	// big.Int consumes big-endian bytes, so reverse.
	buf := make([]byte, len(token))
	for i, b := range token {
		buf[len(token)-1-i] = b
	}
	return new(big.Int).SetBytes(buf)
}

// NumericToToken converts a numeric token back to its 50-byte wire
// form. Values that are nil, negative, or too wide for 50 bytes fail
// with ErrMalformedToken.
func NumericToToken(token *big.Int) ([]byte, error) {
	if token == nil || token.Sign() < 0 {
		return nil, ErrMalformedToken.WithDetails("numeric token must be a non-negative integer")
	}
	if token.BitLen() > TokenSize*8 {
		return nil, ErrMalformedToken.WithDetails(
			fmt.Sprintf("numeric token needs %d bits, want at most %d", token.BitLen(), TokenSize*8))
	}

	be := token.FillBytes(make([]byte, TokenSize))
	raw := make([]byte, TokenSize)
	for i, b := range be {
		raw[TokenSize-1-i] = b
	}
	return raw, nil
}
