package stream

import (
	"fmt"
	"math"

	"github.com/densebyte/streamkit/internal/encoding"
)

// minExpansion is the growth floor: twice the widest single encoded
// scalar, so one scalar write never needs more than one reallocation.
const minExpansion = 2 * encoding.MaxUint32Len

// Buffer is an owned, doubling-growth byte store backing write streams.
// The logical length (position) trails the capacity; Rollback moves the
// position backwards without deallocating, enabling speculative
// write-then-discard.
type Buffer struct {
	buf []byte // len(buf) is the capacity
	pos int    // logical length, pos <= len(buf)
}

// NewBuffer returns a buffer with the given initial capacity.
func NewBuffer(initial int) *Buffer {
	if initial < 0 {
		initial = 0
	}
	return &Buffer{buf: make([]byte, initial)}
}

// Position returns the current logical length.
func (b *Buffer) Position() int { return b.pos }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Rollback sets the logical length to p. Subsequent writes overwrite from
// p onward; already-allocated capacity is retained.
func (b *Buffer) Rollback(p int) { b.pos = p }

// Bytes returns the written prefix of the buffer. The view is invalidated
// by any subsequent write that triggers growth.
func (b *Buffer) Bytes() []byte { return b.buf[:b.pos] }

// PutByte appends v at the current position, growing if needed.
func (b *Buffer) PutByte(v byte) {
	b.ensure(1)
	b.buf[b.pos] = v
	b.pos++
}

// tail returns the unwritten region starting at the current position.
// Callers must ensure room first and advance by the bytes actually used.
func (b *Buffer) tail() []byte { return b.buf[b.pos:] }

func (b *Buffer) advance(n int) { b.pos += n }

// ensure grows the buffer until at least n more bytes fit. Growth doubles
// the capacity with a floor of minExpansion*2, which guarantees a single
// doubling always covers one scalar write.
func (b *Buffer) ensure(n int) {
	if b.pos+n <= len(b.buf) {
		return
	}
	size := len(b.buf) * 2
	if size < minExpansion*2 {
		size = minExpansion * 2
	}
	for size < b.pos+n {
		if size > math.MaxInt/2 {
			panic(fmt.Sprintf("stream: buffer capacity overflow (%d + %d)", b.pos, n))
		}
		size *= 2
	}
	grown := make([]byte, size)
	copy(grown, b.buf)
	b.buf = grown
}
