package stream

import (
	"math"
	"math/bits"

	"github.com/densebyte/streamkit/internal/encoding"
)

// SparseReader decodes scalars from a borrowed buffer written by a
// SparseWriter. The buffer must remain valid and unmodified for the
// reader's lifetime.
type SparseReader struct {
	buf []byte
	off int
	bit uint // bit offset within buf[off], 0..7
}

// NewSparseReader returns a bit-packed read stream over buf starting at
// byte offset off.
func NewSparseReader(buf []byte, off int) *SparseReader {
	return &SparseReader{buf: buf, off: off}
}

// readZero probes the bit at the cursor. A 0 bit is the zero shortcut and
// is consumed; a 1 bit is the first marker bit of a unit run and is left
// in place for readUnit.
func (r *SparseReader) readZero() bool {
	if r.buf[r.off]&(1<<(7-r.bit)) != 0 {
		return false
	}
	r.bit++
	if r.bit == 8 {
		r.off++
		r.bit = 0
	}
	return true
}

// readUnit extracts the next 8 bits at the cursor, splicing across two
// adjacent buffer bytes when the cursor is mid-byte.
func (r *SparseReader) readUnit() byte {
	if r.bit == 0 {
		u := r.buf[r.off]
		r.off++
		return u
	}
	b1 := r.buf[r.off] << r.bit
	r.off++
	b2 := r.buf[r.off] >> (8 - r.bit)
	return b1 | b2
}

// ReadUint32 consumes one value: a single 0 bit decodes to zero, otherwise
// units are consumed until their continuation flag clears, accumulating
// six value bits from the first unit and seven from each that follows.
func (r *SparseReader) ReadUint32() uint32 {
	if r.readZero() {
		return 0
	}
	u := r.readUnit()
	v := uint32(u & 0x3f)
	for i, more := 0, u&0x40 != 0; more; i++ {
		u = r.readUnit()
		v |= uint32(u&0x7f) << (6 + 7*i)
		more = u&0x80 != 0
	}
	return v
}

// ReadInt32 consumes one zigzag-folded value.
func (r *SparseReader) ReadInt32() int32 {
	return encoding.Unzigzag(r.ReadUint32())
}

// ReadBool consumes one value written by WriteBool.
func (r *SparseReader) ReadBool() bool {
	return r.ReadUint32() != 0
}

// ReadUint8 consumes one value written by WriteUint8.
func (r *SparseReader) ReadUint8() byte {
	return byte(r.ReadUint32())
}

// ReadFloat32 consumes one value and un-reverses it back into a float
// pattern.
func (r *SparseReader) ReadFloat32() float32 {
	return math.Float32frombits(bits.Reverse32(r.ReadUint32()))
}

// ReadFloat64 consumes the high then low bit-reversed halves and rejoins
// them.
func (r *SparseReader) ReadFloat64() float64 {
	h := bits.Reverse32(r.ReadUint32())
	l := bits.Reverse32(r.ReadUint32())
	return math.Float64frombits(uint64(h)<<32 | uint64(l))
}

// ReadInt64 consumes the low then high signed halves and rejoins them.
func (r *SparseReader) ReadInt64() int64 {
	low := r.ReadInt32()
	high := r.ReadInt32()
	return int64(high)<<32 | int64(uint32(low))
}

// Offset returns the byte offset of the buffer byte holding the next
// unread bit.
func (r *SparseReader) Offset() int { return r.off }
