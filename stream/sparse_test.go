package stream

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known encodings of single values written at byte alignment.
func TestSparseLiteralEncodings(t *testing.T) {
	cases := []struct {
		v    uint32
		want []byte
	}{
		{1, []byte{0x81}},
		{2, []byte{0x82}},
		{63, []byte{0xbf}},
		{0xff, []byte{0xff, 0x03}},
		{0xffff, []byte{0xff, 0xff, 0x07}},
		{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x1f}},
	}
	for _, c := range cases {
		w := NewSparseWriter(16)
		w.WriteUint32(c.v)
		require.Equal(t, c.want, w.Bytes(), "value 0x%x", c.v)
	}
}

// Eight zeros pack into one all-zero byte; N zeros into ceil(N/8) bytes.
func TestSparseZeroRunCompactness(t *testing.T) {
	w := NewSparseWriter(16)
	for i := 0; i < 8; i++ {
		w.WriteUint32(0)
	}
	require.Equal(t, []byte{0x00}, w.Bytes())

	for _, n := range []int{1, 7, 9, 16, 17, 100} {
		w := NewSparseWriter(16)
		for i := 0; i < n; i++ {
			w.WriteUint32(0)
		}
		require.Equal(t, (n+7)/8, w.Position(), "%d zeros", n)
	}
}

// One zero/continue bit plus at most four continuation units: five bytes
// bound the whole 32-bit domain.
func TestSparseWorstCaseWidth(t *testing.T) {
	for _, v := range uint32Values {
		w := NewSparseWriter(16)
		w.WriteUint32(v)
		require.LessOrEqual(t, w.Position(), 5, "value 0x%x", v)
	}
}

func TestSparseRoundTripUint32(t *testing.T) {
	w := NewSparseWriter(16)
	for _, v := range uint32Values {
		w.WriteUint32(v)
	}
	buf := w.Bytes()
	r := NewSparseReader(buf, 0)
	for _, v := range uint32Values {
		require.Equal(t, v, r.ReadUint32(), "value 0x%x", v)
	}
}

// Interleaved zeros shift the bit cursor by one, forcing every following
// unit to straddle a byte boundary.
func TestSparseByteStraddling(t *testing.T) {
	for lead := 1; lead <= 7; lead++ {
		w := NewSparseWriter(16)
		for i := 0; i < lead; i++ {
			w.WriteUint32(0)
		}
		for _, v := range uint32Values {
			w.WriteUint32(v)
			w.WriteUint32(0)
		}
		r := NewSparseReader(w.Bytes(), 0)
		for i := 0; i < lead; i++ {
			require.Equal(t, uint32(0), r.ReadUint32())
		}
		for _, v := range uint32Values {
			require.Equal(t, v, r.ReadUint32(), "lead %d value 0x%x", lead, v)
			require.Equal(t, uint32(0), r.ReadUint32())
		}
	}
}

func TestSparsePositionFlushesIdempotently(t *testing.T) {
	w := NewSparseWriter(16)
	w.WriteUint32(0)
	// flushing pads the pending bits once; repeated calls are no-ops
	require.Equal(t, 1, w.Position())
	require.Equal(t, 1, w.Position())
	w.Align()
	require.Equal(t, 1, w.Position())

	w.WriteUint32(1)
	require.Equal(t, 2, w.Position())
	require.Equal(t, []byte{0x00, 0x81}, w.Bytes())
}

// Rollback into pre-sized capacity, a bit write, alignment, then further
// writes across a growth boundary.
func TestSparseRollbackAndGrow(t *testing.T) {
	w := NewSparseWriter(100)
	w.Rollback(99)
	w.WriteUint32(0)
	w.Align()
	w.WriteUint32(1)
	w.WriteUint32(2)

	require.Equal(t, 102, w.Position())
	buf := w.Bytes()
	require.Equal(t, byte(0x00), buf[99])
	require.Equal(t, byte(0x81), buf[100])
	require.Equal(t, byte(0x82), buf[101])
}

// The zero shortcut applies to bools and bytes too: eight false bools cost
// one byte.
func TestSparseBoolByteViaUintCodec(t *testing.T) {
	w := NewSparseWriter(16)
	for i := 0; i < 8; i++ {
		w.WriteBool(false)
	}
	require.Equal(t, 1, w.Position())

	w = NewSparseWriter(16)
	w.WriteBool(true)
	w.WriteUint8(0)
	w.WriteUint8(0xff)
	w.WriteBool(false)
	r := NewSparseReader(w.Bytes(), 0)
	require.True(t, r.ReadBool())
	require.Equal(t, byte(0), r.ReadUint8())
	require.Equal(t, byte(0xff), r.ReadUint8())
	require.False(t, r.ReadBool())
}

func TestSparseFloat32BitExact(t *testing.T) {
	w := NewSparseWriter(16)
	for _, p := range float32Patterns {
		w.WriteFloat32(math.Float32frombits(p))
	}
	r := NewSparseReader(w.Bytes(), 0)
	for _, p := range float32Patterns {
		require.Equal(t, p, math.Float32bits(r.ReadFloat32()), "pattern 0x%08x", p)
	}
}

func TestSparseFloat64BitExact(t *testing.T) {
	w := NewSparseWriter(16)
	for _, p := range float64Patterns {
		w.WriteFloat64(math.Float64frombits(p))
	}
	r := NewSparseReader(w.Bytes(), 0)
	for _, p := range float64Patterns {
		require.Equal(t, p, math.Float64bits(r.ReadFloat64()), "pattern 0x%016x", p)
	}
}

func TestSparseRoundTripInt32(t *testing.T) {
	w := NewSparseWriter(16)
	for _, v := range int32Values {
		w.WriteInt32(v)
	}
	r := NewSparseReader(w.Bytes(), 0)
	for _, v := range int32Values {
		require.Equal(t, v, r.ReadInt32())
	}
}

func TestSparseRoundTripInt64(t *testing.T) {
	w := NewSparseWriter(16)
	for _, v := range int64Values {
		w.WriteInt64(v)
	}
	r := NewSparseReader(w.Bytes(), 0)
	for _, v := range int64Values {
		require.Equal(t, v, r.ReadInt64())
	}
}

// A zero double is two zero halves: two bits, one byte after alignment.
func TestSparseZeroDoubleDensity(t *testing.T) {
	w := NewSparseWriter(16)
	w.WriteFloat64(0)
	require.Equal(t, 1, w.Position())
}
