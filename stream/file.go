package stream

import (
	"fmt"

	"github.com/densebyte/streamkit/internal/mmfile"
)

// File is a read-only, file-backed buffer for constructing read streams
// over persisted encodings. On platforms with mmap support the file is
// mapped rather than copied; read streams borrow the mapping, so they
// must not outlive Close.
type File struct {
	data    []byte
	cleanup func() error
}

// Open maps or reads the file at path.
func Open(path string) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("stream: open %s: %w", path, err)
	}
	return &File{data: data, cleanup: cleanup}, nil
}

// Bytes returns the file contents. Zero-copy on mapped platforms; the
// view is invalid after Close.
func (f *File) Bytes() []byte { return f.data }

// Len returns the file size in bytes.
func (f *File) Len() int { return len(f.data) }

// Reader returns a byte-aligned read stream starting at off.
func (f *File) Reader(off int) *Reader { return NewReader(f.data, off) }

// SparseReader returns a bit-packed read stream starting at off.
func (f *File) SparseReader(off int) *SparseReader { return NewSparseReader(f.data, off) }

// Close releases the mapping. Streams constructed from this file must not
// be used afterwards.
func (f *File) Close() error {
	if f.cleanup == nil {
		return nil
	}
	err := f.cleanup()
	f.cleanup = nil
	f.data = nil
	return err
}
