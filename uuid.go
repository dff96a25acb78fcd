package guid64

import (
	"fmt"

	"github.com/google/uuid"
)

// GUIDBytes returns u in the mixed-endian GUID layout: the first three
// fields little-endian, the last eight bytes as stored. uuid.UUID holds the
// big-endian RFC 4122 layout.
func GUIDBytes(u uuid.UUID) [Size]byte {
	return [Size]byte{
		u[3], u[2], u[1], u[0],
		u[5], u[4],
		u[7], u[6],
		u[8], u[9], u[10], u[11], u[12], u[13], u[14], u[15],
	}
}

// EncodeUUID encodes u from its GUID layout. Use it when the text has to
// match encodings produced from GUID-serialized identifiers.
func EncodeUUID(u uuid.UUID) string {
	return Encode(GUIDBytes(u))
}

// EncodeRFC encodes u in its RFC 4122 byte order.
func EncodeRFC(u uuid.UUID) string {
	return Encode([Size]byte(u))
}

// New draws a random version 4 identifier and returns its GUID layout
// encoding along with the identifier.
func New() (string, uuid.UUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("new identifier: %w", err)
	}
	return EncodeUUID(u), u, nil
}
