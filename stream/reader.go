package stream

import (
	"math"
	"math/bits"

	"github.com/densebyte/streamkit/internal/encoding"
)

// Reader decodes scalars from a borrowed buffer using the byte-aligned
// varint codec. The buffer must remain valid and unmodified for the
// reader's lifetime. Reads are pure and allocation-free.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a byte-aligned read stream over buf starting at off.
// The caller must read back exactly the type sequence the matching writer
// produced.
func NewReader(buf []byte, off int) *Reader {
	return &Reader{buf: buf, off: off}
}

// ReadUint32 consumes one varint.
func (r *Reader) ReadUint32() uint32 {
	v, n := encoding.Uint32(r.buf[r.off:])
	r.off += n
	return v
}

// ReadInt32 consumes one zigzag-folded varint.
func (r *Reader) ReadInt32() int32 {
	return encoding.Unzigzag(r.ReadUint32())
}

// ReadBool consumes one raw byte.
func (r *Reader) ReadBool() bool {
	return r.ReadUint8() != 0
}

// ReadUint8 consumes one raw byte.
func (r *Reader) ReadUint8() byte {
	b := r.buf[r.off]
	r.off++
	return b
}

// ReadFloat32 consumes one varint and un-reverses it back into a float
// pattern.
func (r *Reader) ReadFloat32() float32 {
	return math.Float32frombits(bits.Reverse32(r.ReadUint32()))
}

// ReadFloat64 consumes the high then low bit-reversed halves and rejoins
// them.
func (r *Reader) ReadFloat64() float64 {
	h := bits.Reverse32(r.ReadUint32())
	l := bits.Reverse32(r.ReadUint32())
	return math.Float64frombits(uint64(h)<<32 | uint64(l))
}

// ReadInt64 consumes the low then high signed halves and rejoins them.
func (r *Reader) ReadInt64() int64 {
	low := r.ReadInt32()
	high := r.ReadInt32()
	return int64(high)<<32 | int64(uint32(low))
}

// Offset returns the current read position within the buffer.
func (r *Reader) Offset() int { return r.off }
