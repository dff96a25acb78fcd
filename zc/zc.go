// Package zc (zero-copy) contains an opt-in encoder that reuses its output
// buffer between calls. With UnsafeStrings enabled the returned strings
// alias that buffer, so encoding costs no allocation at all.
//
// A ZeroCopy is not safe for concurrent use. The guid64 package functions
// are the concurrency-safe API.
package zc

// Options contains runtime flags controlling zero-copy behaviour.
type Options struct {
	// UnsafeStrings returns strings that alias the internal buffer. Such a
	// string is only valid until the next call to Encode on the same
	// ZeroCopy; copy it (strings.Clone) to keep it longer.
	UnsafeStrings bool

	// Reverse selects the last-to-first write routine.
	Reverse bool
}
