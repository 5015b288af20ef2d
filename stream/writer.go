package stream

import (
	"math"
	"math/bits"

	"github.com/densebyte/streamkit/internal/encoding"
)

// Writer encodes scalars into an owned growable buffer using the
// byte-aligned varint codec.
type Writer struct {
	buf *Buffer
}

// NewWriter returns a byte-aligned write stream with the given initial
// buffer capacity.
func NewWriter(initial int) *Writer {
	return &Writer{buf: NewBuffer(initial)}
}

// WriteUint32 appends v as a self-delimiting varint.
func (w *Writer) WriteUint32(v uint32) {
	w.buf.ensure(encoding.MaxUint32Len)
	w.buf.advance(encoding.PutUint32(w.buf.tail(), v))
}

// WriteInt32 appends v zigzag-folded, keeping small magnitudes of either
// sign compact.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(encoding.Zigzag(v))
}

// WriteBool appends v as one raw byte, 1 or 0.
func (w *Writer) WriteBool(v bool) {
	var b byte
	if v {
		b = 1
	}
	w.buf.PutByte(b)
}

// WriteUint8 appends v as one raw byte.
func (w *Writer) WriteUint8(v byte) {
	w.buf.PutByte(v)
}

// WriteFloat32 appends the bit-reversed IEEE-754 pattern of v as a varint.
// Reversal turns the trailing mantissa zeros common in compiler-produced
// constants into leading zeros, which the varint compresses well. The
// round trip is bit-exact for every pattern, NaN payloads included.
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(bits.Reverse32(math.Float32bits(v)))
}

// WriteFloat64 splits the 64-bit pattern into halves and appends each half
// bit-reversed, high half first. Reversing the halves separately is almost
// as effective as reversing the whole word and reuses the 32-bit path.
func (w *Writer) WriteFloat64(v float64) {
	u := math.Float64bits(v)
	w.WriteUint32(bits.Reverse32(uint32(u >> 32)))
	w.WriteUint32(bits.Reverse32(uint32(u)))
}

// WriteInt64 appends v as two signed 32-bit halves, low half first. This
// reuses the 32-bit codec unchanged at the cost of at most one extra byte
// over a dedicated 64-bit varint.
func (w *Writer) WriteInt64(v int64) {
	w.WriteInt32(int32(v))
	w.WriteInt32(int32(v >> 32))
}

// Position returns the number of bytes written so far.
func (w *Writer) Position() int { return w.buf.Position() }

// Rollback retracts the stream to position p; subsequent writes overwrite
// from there.
func (w *Writer) Rollback(p int) { w.buf.Rollback(p) }

// Bytes returns the encoded bytes. The view is invalidated by further
// writes.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }
