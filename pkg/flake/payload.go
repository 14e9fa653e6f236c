package flake

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Field widths of the token wire format (based on the Flakely token
// layout). All multi-byte fields are little-endian; the byte order is a
// wire-format constant, not configurable.
const (
	// IdentifierSize is the width of the caller-supplied discriminator.
	IdentifierSize = 4

	// CounterSize is the width of the intra-tick sequence number.
	CounterSize = 2

	// ProcessSize is the width of the process marker.
	ProcessSize = 4

	// DeviceSize is the width of the device marker.
	DeviceSize = 4

	// TickSize is the width of the truncated whole-second timestamp.
	TickSize = 4

	// PayloadSize is the width of the signed portion of a token.
	PayloadSize = IdentifierSize + CounterSize + ProcessSize + DeviceSize + TickSize

	// SignatureSize is the width of the SHA-256 signature.
	SignatureSize = sha256.Size

	// TokenSize is the total token width.
	TokenSize = PayloadSize + SignatureSize
)

// MaxIdentifier is the largest identifier that fits the 4-byte field.
const MaxIdentifier = 1<<(IdentifierSize*8) - 1

// Payload holds the five signed fields of a token.
type Payload struct {
	Identifier uint32
	Counter    uint16
	Process    uint32
	Device     uint32
	Tick       uint32
}

// Encode serializes the payload into its 18-byte little-endian wire
// form: identifier, counter, process, device, tick, in that order.
func (p Payload) Encode() []byte {
	buf := make([]byte, PayloadSize)
	binary.LittleEndian.PutUint32(buf[0:4], p.Identifier)
	binary.LittleEndian.PutUint16(buf[4:6], p.Counter)
	binary.LittleEndian.PutUint32(buf[6:10], p.Process)
	binary.LittleEndian.PutUint32(buf[10:14], p.Device)
	binary.LittleEndian.PutUint32(buf[14:18], p.Tick)
	return buf
}

// DecodePayload parses an 18-byte payload back into its fields.
// It accepts a full 50-byte token as well, reading only the payload
// portion.
func DecodePayload(data []byte) (Payload, error) {
	if len(data) != PayloadSize && len(data) != TokenSize {
		return Payload{}, ErrMalformedToken.WithDetails(
			fmt.Sprintf("payload is %d bytes, want %d or %d", len(data), PayloadSize, TokenSize))
	}
	return Payload{
		Identifier: binary.LittleEndian.Uint32(data[0:4]),
		Counter:    binary.LittleEndian.Uint16(data[4:6]),
		Process:    binary.LittleEndian.Uint32(data[6:10]),
		Device:     binary.LittleEndian.Uint32(data[10:14]),
		Tick:       binary.LittleEndian.Uint32(data[14:18]),
	}, nil
}
