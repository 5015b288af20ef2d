// Package encoding implements the primitive value transforms shared by both
// stream families: the self-delimiting unsigned varint and the sign fold.
//
// These are the fixed boundary primitives of the format. Both codecs are
// defined in terms of them, so their encodings must never change once
// streams have been persisted.
package encoding

import "encoding/binary"

// MaxUint32Len is the maximum encoded size of one 32-bit varint. A single
// scalar write never needs more than this many bytes of buffer headroom.
const MaxUint32Len = binary.MaxVarintLen32

// PutUint32 encodes v as a self-delimiting varint into b and returns the
// number of bytes written. b must have at least MaxUint32Len bytes of room.
func PutUint32(b []byte, v uint32) int {
	return binary.PutUvarint(b, uint64(v))
}

// Uint32 decodes a varint from the start of b, returning the value and the
// number of bytes consumed.
func Uint32(b []byte) (uint32, int) {
	v, n := binary.Uvarint(b)
	return uint32(v), n
}

// Zigzag folds a signed 32-bit value into an unsigned codeword so that
// small magnitudes of either sign stay small: 0, -1, 1, -2, 2, ...
func Zigzag(v int32) uint32 {
	return uint32((v << 1) ^ (v >> 31))
}

// Unzigzag is the inverse of Zigzag.
func Unzigzag(u uint32) int32 {
	return int32(u>>1) ^ -int32(u&1)
}
