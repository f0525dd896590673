// Package scratch provides the 64-byte-aligned scratch buffer the
// auto-tuner allocates once per call and reuses across every candidate
// trial (spec.md §4.6 step 1). Adapted from the teacher's bucketed
// sync.Pool allocator (internal/pool/pool.go) down to a single
// allocate-on-demand buffer, since the auto-tuner's scratch buffer has
// one very specific lifetime (one call) rather than many short-lived
// hot-path allocations.
package scratch

import "unsafe"

const alignment = 64

// Buffer is a byte slice whose first element is 64-byte aligned. The
// zero value is not usable; construct with New.
type Buffer struct {
	raw   []byte
	bytes []byte
}

// New allocates a Buffer with at least n usable, 64-byte-aligned bytes.
// n may be 0, in which case Bytes() returns a nil-length (but non-nil)
// slice — callers whose estimator reports a zero scratch requirement
// skip allocation entirely per spec.md §4.6.
func New(n int) *Buffer {
	if n <= 0 {
		return &Buffer{bytes: []byte{}}
	}
	raw := make([]byte, n+alignment-1)
	off := alignOffset(raw)
	return &Buffer{raw: raw, bytes: raw[off : off+n]}
}

func alignOffset(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&b[0]))
	pad := (alignment - int(addr%alignment)) % alignment
	return pad
}

// Bytes returns the aligned, usable portion of the buffer.
func (b *Buffer) Bytes() []byte { return b.bytes }
