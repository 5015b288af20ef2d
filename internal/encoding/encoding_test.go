package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint32RoundTrip(t *testing.T) {
	values := []uint32{
		0, 1, 2, 63, 64, 127, 128, 129,
		16383, 16384, 1 << 20, 1<<28 - 1, 1 << 28,
		math.MaxUint32 - 1, math.MaxUint32,
	}
	for _, v := range values {
		var b [MaxUint32Len]byte
		n := PutUint32(b[:], v)
		require.Positive(t, n)
		require.LessOrEqual(t, n, MaxUint32Len)

		got, m := Uint32(b[:])
		require.Equal(t, v, got, "value 0x%x", v)
		require.Equal(t, n, m, "value 0x%x consumed length", v)
	}
}

func TestUint32Lengths(t *testing.T) {
	cases := []struct {
		v uint32
		n int
	}{
		{0, 1},
		{0x7f, 1},
		{0x80, 2},
		{0x3fff, 2},
		{0x4000, 3},
		{0x1fffff, 3},
		{0x200000, 4},
		{0xfffffff, 4},
		{0x10000000, 5},
		{math.MaxUint32, 5},
	}
	for _, c := range cases {
		var b [MaxUint32Len]byte
		require.Equal(t, c.n, PutUint32(b[:], c.v), "value 0x%x", c.v)
	}
}

// Encodings are self-delimiting: concatenated values decode back without
// any out-of-band lengths.
func TestUint32SelfDelimiting(t *testing.T) {
	values := []uint32{0, math.MaxUint32, 300, 1, 0x10000000}
	var buf []byte
	for _, v := range values {
		var b [MaxUint32Len]byte
		buf = append(buf, b[:PutUint32(b[:], v)]...)
	}
	off := 0
	for _, want := range values {
		got, n := Uint32(buf[off:])
		require.Equal(t, want, got)
		off += n
	}
	require.Equal(t, len(buf), off)
}

func TestZigzagSmallMagnitudes(t *testing.T) {
	cases := []struct {
		v int32
		u uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt32, 0xfffffffe},
		{math.MinInt32, 0xffffffff},
	}
	for _, c := range cases {
		require.Equal(t, c.u, Zigzag(c.v), "fold %d", c.v)
		require.Equal(t, c.v, Unzigzag(c.u), "unfold 0x%x", c.u)
	}
}

func TestZigzagBijection(t *testing.T) {
	for _, v := range []int32{math.MinInt32, math.MinInt32 + 1, -100000, -1, 0, 1, 100000, math.MaxInt32 - 1, math.MaxInt32} {
		require.Equal(t, v, Unzigzag(Zigzag(v)))
	}
	// dense sweep around zero
	for v := int32(-4096); v <= 4096; v++ {
		require.Equal(t, v, Unzigzag(Zigzag(v)))
	}
}
