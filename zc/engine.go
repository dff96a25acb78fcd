package zc

import (
	"unsafe"

	"github.com/rawbytedev/guid64/internal/common"
)

type ZeroCopy struct {
	Opts Options
	buf  [common.EncodedLen]byte
	put  func(dst *[common.EncodedLen]byte, src *[common.Size]byte)
}

func NewZeroCopy(opts Options) *ZeroCopy {
	z := &ZeroCopy{Opts: opts, put: common.PutForward}
	if opts.Reverse {
		z.put = common.PutReverse
	}
	return z
}

// Encode returns the 22 character encoding of id. See Options.UnsafeStrings
// for the lifetime of the result.
func (z *ZeroCopy) Encode(id [common.Size]byte) string {
	z.put(&z.buf, &id)
	if z.Opts.UnsafeStrings {
		return BytesToString(z.buf[:])
	}
	return string(z.buf[:])
}

// Bytes encodes id and returns the internal buffer. The slice is
// overwritten by the next call.
func (z *ZeroCopy) Bytes(id [common.Size]byte) []byte {
	z.put(&z.buf, &id)
	return z.buf[:]
}

// BytesToString converts b to a string without copying.
// WARNING: b must not be modified while the string is in use.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
