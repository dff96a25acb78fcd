// Package guid64 encodes 128-bit identifiers as 22 character, URL-safe,
// unpadded Base64 strings.
//
// The alphabet is the standard Base64 one with '_' at index 62 and '-' at
// index 63, so the output matches encoding with the standard alphabet,
// replacing '/' with '-' and '+' with '_', and dropping the "==" padding.
//
// Every function in this package is pure and safe for concurrent use.
package guid64

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/guid64/internal/common"
)

const (
	// Size is the number of bytes in an identifier.
	Size = common.Size
	// EncodedLen is the number of characters in an encoded identifier.
	EncodedLen = common.EncodedLen
	// Alphabet lists the output characters by 6-bit value.
	Alphabet = common.Alphabet
)

var (
	ErrInvalidLength  = errors.New("identifier must be exactly 16 bytes")
	ErrUnknownVariant = errors.New("unknown encoder variant")
)

// Encode returns the 22 character encoding of id.
func Encode(id [Size]byte) string {
	return EncodeDirect(id)
}

// EncodeBytes is Encode for callers holding a slice. Any length other than
// Size is rejected before anything is computed.
func EncodeBytes(b []byte) (string, error) {
	if len(b) != Size {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}
	return Encode([Size]byte(b)), nil
}

// Put writes the encoding of id into dst. It does not allocate.
func Put(dst *[EncodedLen]byte, id *[Size]byte) {
	common.PutForward(dst, id)
}

// AppendEncode appends the encoding of id to dst and returns the extended
// slice.
func AppendEncode(dst []byte, id [Size]byte) []byte {
	var out [EncodedLen]byte
	common.PutForward(&out, &id)
	return append(dst, out[:]...)
}
