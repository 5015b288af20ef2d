package stream

import (
	"math"
	"math/bits"

	"github.com/densebyte/streamkit/internal/encoding"
)

// SparseWriter encodes scalars into an owned growable buffer using the
// bit-packed codec. Each zero value costs a single bit, so streams
// dominated by zeros come out far denser than with the byte-aligned
// family, at the price of bit-granular packing everywhere else.
type SparseWriter struct {
	buf   *Buffer
	curr  byte // pending bits not yet flushed, low-justified
	nbits uint // bit offset within curr, 0..7; 0 means byte-aligned
}

// NewSparseWriter returns a bit-packed write stream with the given initial
// buffer capacity.
func NewSparseWriter(initial int) *SparseWriter {
	return &SparseWriter{buf: NewBuffer(initial)}
}

// writeZeroBit emits the one-bit zero shortcut.
func (w *SparseWriter) writeZeroBit() {
	w.curr <<= 1
	w.nbits++
	if w.nbits == 8 {
		w.buf.PutByte(w.curr)
		w.curr, w.nbits = 0, 0
	}
}

// writeUnit splices an 8-bit unit into the stream at the current bit
// offset: the unit's high 8-nbits bits complete the current output byte
// and its low nbits bits become the new pending accumulator. At offset 0
// this degrades to a whole-byte transfer.
func (w *SparseWriter) writeUnit(u byte) {
	w.buf.PutByte(w.curr<<(8-w.nbits) | u>>w.nbits)
	w.curr = u & (0xff >> (8 - w.nbits))
}

// WriteUint32 appends v. Zero is a lone 0 bit. A non-zero value starts
// with a unit whose top bit is 1 (so the decoder's first-bit probe
// distinguishes the two cases), carries six value bits plus a 0x40
// continuation flag, and continues with seven value bits per unit under a
// 0x80 continuation flag, least-significant bits first. At most five units
// cover the full 32-bit domain.
func (w *SparseWriter) WriteUint32(v uint32) {
	if v == 0 {
		w.writeZeroBit()
		return
	}
	u := 0x80 | byte(v&0x3f)
	rest := v >> 6
	if rest != 0 {
		u |= 0x40
	}
	w.writeUnit(u)
	for rest != 0 {
		u = byte(rest & 0x7f)
		rest >>= 7
		if rest != 0 {
			u |= 0x80
		}
		w.writeUnit(u)
	}
}

// WriteInt32 appends v zigzag-folded through the uint codec.
func (w *SparseWriter) WriteInt32(v int32) {
	w.WriteUint32(encoding.Zigzag(v))
}

// WriteBool appends v through the uint codec, so false costs one bit.
func (w *SparseWriter) WriteBool(v bool) {
	var u uint32
	if v {
		u = 1
	}
	w.WriteUint32(u)
}

// WriteUint8 appends v through the uint codec.
func (w *SparseWriter) WriteUint8(v byte) {
	w.WriteUint32(uint32(v))
}

// WriteFloat32 appends the bit-reversed IEEE-754 pattern of v.
func (w *SparseWriter) WriteFloat32(v float32) {
	w.WriteUint32(bits.Reverse32(math.Float32bits(v)))
}

// WriteFloat64 appends the bit-reversed high then low halves of v.
func (w *SparseWriter) WriteFloat64(v float64) {
	u := math.Float64bits(v)
	w.WriteUint32(bits.Reverse32(uint32(u >> 32)))
	w.WriteUint32(bits.Reverse32(uint32(u)))
}

// WriteInt64 appends v as two signed 32-bit halves, low half first.
func (w *SparseWriter) WriteInt64(v int64) {
	w.WriteInt32(int32(v))
	w.WriteInt32(int32(v >> 32))
}

// Align flushes the pending partial byte, padding unused low bits with
// zeros, and returns the cursor to byte alignment. Idempotent.
func (w *SparseWriter) Align() {
	if w.nbits == 0 {
		return
	}
	w.buf.PutByte(w.curr << (8 - w.nbits))
	w.curr, w.nbits = 0, 0
}

// Position flushes any pending partial byte and returns the number of
// bytes written.
func (w *SparseWriter) Position() int {
	w.Align()
	return w.buf.Position()
}

// Rollback retracts the stream to byte position p and resets the bit
// cursor to byte alignment.
func (w *SparseWriter) Rollback(p int) {
	w.buf.Rollback(p)
	w.curr, w.nbits = 0, 0
}

// Bytes flushes any pending partial byte and returns the encoded bytes.
// The view is invalidated by further writes.
func (w *SparseWriter) Bytes() []byte {
	w.Align()
	return w.buf.Bytes()
}
