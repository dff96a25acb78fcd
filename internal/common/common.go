package common

const (
	// Size is the width in bytes of an identifier.
	Size = 16
	// EncodedLen is the width of an encoded identifier, padding stripped.
	EncodedLen = 22
	// Alphabet is the standard Base64 alphabet with index 62 mapped to '_'
	// and index 63 mapped to '-'.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
)

// IsURLSafe reports whether c belongs to Alphabet.
func IsURLSafe(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-':
		return true
	default:
		return false
	}
}

// ReplaceUnsafe maps the two standard Base64 characters that need escaping
// in URLs onto their substitutes. Every other byte is returned unchanged.
func ReplaceUnsafe(c byte) byte {
	switch c {
	case '/':
		return '-'
	case '+':
		return '_'
	default:
		return c
	}
}

// PutForward encodes src into dst, 3 bytes into 4 characters, first to last.
// The single trailing byte yields 2 characters and no padding.
func PutForward(dst *[EncodedLen]byte, src *[Size]byte) {
	k := 0
	for i := 0; i < 20; i += 4 {
		dst[i] = Alphabet[src[k]>>2]
		dst[i+1] = Alphabet[(src[k]&0x03)<<4|src[k+1]>>4]
		dst[i+2] = Alphabet[(src[k+1]&0x0f)<<2|src[k+2]>>6]
		dst[i+3] = Alphabet[src[k+2]&0x3f]
		k += 3
	}
	dst[20] = Alphabet[src[15]>>2]
	dst[21] = Alphabet[(src[15]&0x03)<<4]
}

// PutReverse is PutForward unrolled and written from the last character to
// the first. Both arrays are fixed size so every index is proven in range at
// compile time.
func PutReverse(dst *[EncodedLen]byte, src *[Size]byte) {
	dst[21] = Alphabet[(src[15]&0x03)<<4]
	dst[20] = Alphabet[src[15]>>2]

	dst[19] = Alphabet[src[14]&0x3f]
	dst[18] = Alphabet[(src[13]&0x0f)<<2|src[14]>>6]
	dst[17] = Alphabet[(src[12]&0x03)<<4|src[13]>>4]
	dst[16] = Alphabet[src[12]>>2]

	dst[15] = Alphabet[src[11]&0x3f]
	dst[14] = Alphabet[(src[10]&0x0f)<<2|src[11]>>6]
	dst[13] = Alphabet[(src[9]&0x03)<<4|src[10]>>4]
	dst[12] = Alphabet[src[9]>>2]

	dst[11] = Alphabet[src[8]&0x3f]
	dst[10] = Alphabet[(src[7]&0x0f)<<2|src[8]>>6]
	dst[9] = Alphabet[(src[6]&0x03)<<4|src[7]>>4]
	dst[8] = Alphabet[src[6]>>2]

	dst[7] = Alphabet[src[5]&0x3f]
	dst[6] = Alphabet[(src[4]&0x0f)<<2|src[5]>>6]
	dst[5] = Alphabet[(src[3]&0x03)<<4|src[4]>>4]
	dst[4] = Alphabet[src[3]>>2]

	dst[3] = Alphabet[src[2]&0x3f]
	dst[2] = Alphabet[(src[1]&0x0f)<<2|src[2]>>6]
	dst[1] = Alphabet[(src[0]&0x03)<<4|src[1]>>4]
	dst[0] = Alphabet[src[0]>>2]
}
