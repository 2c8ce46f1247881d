// Package arena provides a fixed-capacity scratch allocator for scoring
// workers.
//
// Each worker owns exactly one arena for its whole lifetime. The arena backs
// the scorer's dynamic-programming matrices and is reset in O(1) between
// candidates instead of being freed, which keeps the hot loop free of
// allocator pressure. An arena is NOT safe for concurrent use and must never
// be shared across workers.
package arena

import (
	"errors"
	"unsafe"
)

// ErrArenaFull is returned when a request exceeds the remaining capacity.
// The arena never truncates a request; callers fall back to a transient heap
// allocation instead.
var ErrArenaFull = errors.New("arena: request exceeds capacity")

const alignment = 8

// Arena is a bump allocator over a single fixed backing buffer.
type Arena struct {
	buf []byte
	off int
}

// New creates an Arena with the given capacity in bytes. The capacity is
// fixed for the arena's lifetime; it is never resized.
func New(size int) *Arena {
	if size < 0 {
		size = 0
	}
	return &Arena{buf: make([]byte, size)}
}

// Alloc returns an aligned byte slice of the given size, or ErrArenaFull if
// the remaining capacity cannot satisfy it.
func (a *Arena) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	pad := (alignment - a.off%alignment) % alignment
	next := a.off + pad + size
	if next > len(a.buf) {
		return nil, ErrArenaFull
	}
	start := a.off + pad
	a.off = next
	return a.buf[start:next:next], nil
}

// AllocUint16Slice returns a zeroed uint16 slice of length n. Zeroing is the
// allocator's job because the backing buffer is reused across candidates.
func (a *Arena) AllocUint16Slice(n int) ([]uint16, error) {
	if n <= 0 {
		return nil, nil
	}
	b, err := a.Alloc(n * 2)
	if err != nil {
		return nil, err
	}
	s := unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), n) //nolint:gosec // typed view over arena memory
	clear(s)
	return s, nil
}

// Reset discards all allocations in O(1) without releasing the backing
// buffer.
func (a *Arena) Reset() { a.off = 0 }

// Cap returns the total capacity in bytes.
func (a *Arena) Cap() int { return len(a.buf) }

// Used returns the number of bytes currently allocated, including alignment
// padding.
func (a *Arena) Used() int { return a.off }
