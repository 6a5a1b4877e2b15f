package journal

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/muninndb/muninn/pkg/codec"
)

// FileReader reads framed entries sequentially from a journal byte
// stream. It implements Reader.
type FileReader struct {
	src      *bufio.Reader
	closer   io.Closer
	offset   int64
	maxEntry int
}

// NewReader creates a journal reader over the configured source.
func NewReader(config ReaderConfig) (*FileReader, error) {
	if config.Source == nil {
		return nil, fmt.Errorf("journal: source is required")
	}
	if config.MaxEntrySize <= 0 {
		config.MaxEntrySize = DefaultMaxEntrySize
	}
	r := &FileReader{
		src:      bufio.NewReader(config.Source),
		maxEntry: config.MaxEntrySize,
	}
	if closer, ok := config.Source.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// Next reads one frame: varint size, entry bytes, CRC-32C trailer. It
// returns io.EOF at a clean end of journal, ErrTruncatedFrame when the
// stream ends inside a frame, and ErrChecksumMismatch when the trailer
// does not match the entry bytes.
func (r *FileReader) Next() (*codec.Entry, error) {
	size, err := binary.ReadUvarint(r.src)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedFrame
		}
		return nil, err
	}
	if size > uint64(r.maxEntry) {
		return nil, ErrFrameTooLarge
	}

	frame := make([]byte, int(size)+checksumSize)
	if _, err := io.ReadFull(r.src, frame); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncatedFrame
		}
		return nil, err
	}

	entryBytes := frame[:size]
	want := binary.LittleEndian.Uint32(frame[size:])
	if crc32.Checksum(entryBytes, castagnoli) != want {
		return nil, ErrChecksumMismatch
	}

	entry, err := codec.Decode(entryBytes)
	if err != nil {
		return nil, err
	}

	r.offset += int64(protowire.SizeVarint(size)) + int64(len(frame))
	return entry, nil
}

// Offset returns the byte offset just past the last successfully read
// frame.
func (r *FileReader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator over the remaining entries.
func (r *FileReader) Iterator() EntryIterator {
	return &entryIterator{reader: r}
}

// Close closes the underlying source if it is closable.
func (r *FileReader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// entryIterator implements EntryIterator for streaming access
type entryIterator struct {
	reader *FileReader
	entry  *codec.Entry
	err    error
}

func (it *entryIterator) Next() bool {
	it.entry, it.err = it.reader.Next()
	return it.err == nil
}

func (it *entryIterator) Entry() *codec.Entry {
	return it.entry
}

// Err returns the error that stopped iteration; io.EOF means the
// journal ended cleanly.
func (it *entryIterator) Err() error {
	return it.err
}
