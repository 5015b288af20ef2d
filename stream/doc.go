// Package stream implements compact binary codecs for scalar values.
//
// # Overview
//
// This package persists sequences of scalars (unsigned and signed 32-bit
// integers, booleans, bytes, floats, doubles, 64-bit longs) into dense byte
// streams, optimized for the case where both encoded size and decode speed
// matter — per-record metadata emitted once by a producer and decoded many
// times by a consumer.
//
// Two codec families share one surface:
//
//   - Writer / Reader: a byte-aligned codec layering signed, float, double
//     and long encodings over a self-delimiting unsigned varint.
//   - SparseWriter / SparseReader: a bit-packed codec that drops byte
//     alignment entirely, spending a single bit on each zero value. Use it
//     when most encoded values are zero.
//
// Both families implement the WriteStream and ReadStream interfaces; the
// family is chosen at construction time.
//
// # Encoding
//
// Small magnitudes encode small. Signed values are zigzag-folded so small
// negatives stay compact. Float and double bit patterns are bit-reversed
// before varint encoding: compiler-produced constants tend to have long
// runs of trailing mantissa zeros, and reversal turns those into leading
// zeros the varint squeezes out. Longs are split into two independently
// encoded signed 32-bit halves, low half first.
//
// The sparse family encodes a zero value as one 0 bit. A non-zero value is
// a run of 8-bit units packed at the current bit cursor: the first unit
// carries a marker bit, a continuation bit and the low six value bits, and
// each following unit carries a continuation bit and the next seven value
// bits. Units straddle output byte boundaries as needed.
//
// # Typical use
//
//	w := stream.NewSparseWriter(64)
//	w.WriteUint32(lineno)
//	w.WriteInt64(offset)
//	end := w.Position() // flushes the partial byte
//	persist(w.Bytes()[:end])
//
//	r := stream.NewSparseReader(buf, 0)
//	lineno := r.ReadUint32()
//	offset := r.ReadInt64()
//
// # Trust model
//
// Neither encoding is self-describing: the reader must know out of band
// which family produced a buffer and the exact type sequence the writer
// emitted. There is no in-band tag, no framing and no validation. A
// mismatched read yields wrong values or a bounds panic, never a detected
// error. This is intentional — streams move values between two internal,
// schema-agreeing endpoints, never across a trust boundary.
//
// # Ownership
//
// Write streams own a growable Buffer; the view returned by Bytes is
// invalidated by further writes. Read streams borrow the caller's byte
// slice, never mutate it, and must not outlive it. File wraps a read-only
// file-backed buffer (memory-mapped where the platform supports it) for
// constructing read streams over persisted data.
//
// # Thread safety
//
// Stream instances are single-threaded. Multiple goroutines may read the
// same underlying buffer through separate read streams; sharing one stream
// instance requires external synchronization.
package stream
