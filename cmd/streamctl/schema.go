package main

import (
	"fmt"
	"strconv"

	"github.com/densebyte/streamkit/stream"
)

// A schema is the out-of-band type sequence of a stream, one letter per
// value. It is the caller-side contract the codecs themselves never carry.
const schemaLetters = "uibyfdl"

func parseSchema(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("empty schema; want letters from %q", schemaLetters)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'u', 'i', 'b', 'y', 'f', 'd', 'l':
		default:
			return nil, fmt.Errorf("schema position %d: unknown type %q (want one of %q)", i, string(s[i]), schemaLetters)
		}
	}
	return []byte(s), nil
}

func newWriteStream(codec string, initial int) (stream.WriteStream, error) {
	switch codec {
	case "varint":
		return stream.NewWriter(initial), nil
	case "sparse":
		return stream.NewSparseWriter(initial), nil
	default:
		return nil, fmt.Errorf("unknown codec %q (want varint or sparse)", codec)
	}
}

func newReadStream(codec string, buf []byte, off int) (stream.ReadStream, error) {
	switch codec {
	case "varint":
		return stream.NewReader(buf, off), nil
	case "sparse":
		return stream.NewSparseReader(buf, off), nil
	default:
		return nil, fmt.Errorf("unknown codec %q (want varint or sparse)", codec)
	}
}

func writeValue(w stream.WriteStream, typ byte, text string) error {
	switch typ {
	case 'u':
		v, err := strconv.ParseUint(text, 0, 32)
		if err != nil {
			return fmt.Errorf("uint32 %q: %w", text, err)
		}
		w.WriteUint32(uint32(v))
	case 'i':
		v, err := strconv.ParseInt(text, 0, 32)
		if err != nil {
			return fmt.Errorf("int32 %q: %w", text, err)
		}
		w.WriteInt32(int32(v))
	case 'b':
		v, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("bool %q: %w", text, err)
		}
		w.WriteBool(v)
	case 'y':
		v, err := strconv.ParseUint(text, 0, 8)
		if err != nil {
			return fmt.Errorf("byte %q: %w", text, err)
		}
		w.WriteUint8(byte(v))
	case 'f':
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return fmt.Errorf("float32 %q: %w", text, err)
		}
		w.WriteFloat32(float32(v))
	case 'd':
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("float64 %q: %w", text, err)
		}
		w.WriteFloat64(v)
	case 'l':
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return fmt.Errorf("int64 %q: %w", text, err)
		}
		w.WriteInt64(v)
	}
	return nil
}

func formatValue(r stream.ReadStream, typ byte) string {
	switch typ {
	case 'u':
		return strconv.FormatUint(uint64(r.ReadUint32()), 10)
	case 'i':
		return strconv.FormatInt(int64(r.ReadInt32()), 10)
	case 'b':
		return strconv.FormatBool(r.ReadBool())
	case 'y':
		return strconv.FormatUint(uint64(r.ReadUint8()), 10)
	case 'f':
		return strconv.FormatFloat(float64(r.ReadFloat32()), 'g', -1, 32)
	case 'd':
		return strconv.FormatFloat(r.ReadFloat64(), 'g', -1, 64)
	case 'l':
		return strconv.FormatInt(r.ReadInt64(), 10)
	}
	return ""
}
