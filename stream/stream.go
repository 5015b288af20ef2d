package stream

// WriteStream is the scalar write capability shared by both codec
// families. Callers pick a family at construction time; the typed write
// sequence they perform is the stream's only schema.
type WriteStream interface {
	WriteUint32(v uint32)
	WriteInt32(v int32)
	WriteBool(v bool)
	WriteUint8(v byte)
	WriteFloat32(v float32)
	WriteFloat64(v float64)
	WriteInt64(v int64)

	// Position reports the bytes written so far, flushing any pending
	// partial byte first where the family packs below byte granularity.
	Position() int
	// Rollback retracts the stream to an earlier position.
	Rollback(p int)
	// Bytes returns the finished encoding.
	Bytes() []byte
}

// ReadStream is the matching read capability. Reads must mirror the
// writer's type sequence exactly; there is no in-band tagging.
type ReadStream interface {
	ReadUint32() uint32
	ReadInt32() int32
	ReadBool() bool
	ReadUint8() byte
	ReadFloat32() float32
	ReadFloat64() float64
	ReadInt64() int64

	// Offset reports the current byte position within the borrowed buffer.
	Offset() int
}

var (
	_ WriteStream = (*Writer)(nil)
	_ WriteStream = (*SparseWriter)(nil)
	_ ReadStream  = (*Reader)(nil)
	_ ReadStream  = (*SparseReader)(nil)
)
