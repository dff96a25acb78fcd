package guid64

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/rawbytedev/guid64/internal/common"
)

// Variant is a named implementation of Encode. All variants return
// identical output for every input; they differ in memory traffic and
// instruction count.
type Variant struct {
	Name   string
	Encode func(id [Size]byte) string
}

var variants = []Variant{
	{Name: "reference", Encode: EncodeReference},
	{Name: "substitute", Encode: EncodeSubstitute},
	{Name: "direct", Encode: EncodeDirect},
	{Name: "reverse", Encode: EncodeReverse},
}

// Variants returns every implementation, reference first.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, error) {
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

var urlReplacer = strings.NewReplacer("/", "-", "+", "_")

// EncodeReference encodes with the standard alphabet, substitutes the
// characters that are not URL-safe and strips the padding. Every other
// variant is checked against it.
func EncodeReference(id [Size]byte) string {
	s := base64.StdEncoding.EncodeToString(id[:])
	return strings.TrimRight(urlReplacer.Replace(s), "=")
}

// EncodeSubstitute encodes into a stack buffer with the standard alphabet
// and substitutes while copying into the final text, skipping the two
// padding bytes.
func EncodeSubstitute(id [Size]byte) string {
	var encoded [24]byte
	base64.StdEncoding.Encode(encoded[:], id[:])

	var out [EncodedLen]byte
	for i := range out {
		out[i] = common.ReplaceUnsafe(encoded[i])
	}
	return string(out[:])
}

// EncodeDirect computes each character from the input bits with no
// intermediate encoded buffer.
func EncodeDirect(id [Size]byte) string {
	var out [EncodedLen]byte
	common.PutForward(&out, &id)
	return string(out[:])
}

// EncodeReverse is EncodeDirect unrolled and computed from the last
// character to the first.
func EncodeReverse(id [Size]byte) string {
	var out [EncodedLen]byte
	common.PutReverse(&out, &id)
	return string(out[:])
}
