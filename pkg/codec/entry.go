package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// Common header layout (V1), little-endian:
// Magic(1) + Attr(4) + LogID(8) + EntryID(8) + LastConfirmID(8) = 29 bytes
const (
	commonHeaderSize    = 29
	magicOffset         = 0
	attrOffset          = 1
	logIDOffset         = 5
	entryIDOffset       = 13
	lastConfirmIDOffset = 21
)

// Entry is one log record in serialized-ready form: the 29-byte common
// header kept verbatim as it appears on the wire, plus the headers in
// wire order with the kv header always last.
//
// Entries are immutable once built or decoded and safe to share across
// goroutines.
type Entry struct {
	common  [commonHeaderSize]byte
	headers []Header
}

// Magic returns the entry's format version.
func (e *Entry) Magic() Magic {
	return Magic(e.common[magicOffset])
}

// Attr returns the entry's caller-defined tag.
func (e *Entry) Attr() Attr {
	return Attr(int32(binary.LittleEndian.Uint32(e.common[attrOffset:])))
}

// LogID returns the ID of the log this entry belongs to.
func (e *Entry) LogID() int64 {
	return int64(binary.LittleEndian.Uint64(e.common[logIDOffset:]))
}

// EntryID returns the entry's ID within its log.
func (e *Entry) EntryID() int64 {
	return int64(binary.LittleEndian.Uint64(e.common[entryIDOffset:]))
}

// LastConfirmID returns the last-add-confirmed ID carried by this
// entry.
func (e *Entry) LastConfirmID() int64 {
	return int64(binary.LittleEndian.Uint64(e.common[lastConfirmIDOffset:]))
}

// Key returns the kv header's key.
func (e *Entry) Key() []byte {
	return e.headers[len(e.headers)-1].Key()
}

// Value returns the kv header's value.
func (e *Entry) Value() []byte {
	return e.headers[len(e.headers)-1].Value()
}

// Headers returns the auxiliary headers in original order, excluding
// the kv header.
func (e *Entry) Headers() []Header {
	return e.headers[:len(e.headers)-1]
}

// BinarySize returns the total size of the entry when encoded.
func (e *Entry) BinarySize() int {
	size := commonHeaderSize
	for _, h := range e.headers {
		hs := h.BinarySize()
		size += protowire.SizeVarint(uint64(hs)) + hs
	}
	return size
}

// Encode writes the entry's serialized form to w: the common header
// verbatim, then each header prefixed with its varint size, kv last.
// It fails only when w signals a write error.
func (e *Entry) Encode(w io.Writer) error {
	if _, err := w.Write(e.common[:]); err != nil {
		return err
	}
	var tmp [maxDelimiterSize]byte
	for _, h := range e.headers {
		delim := protowire.AppendVarint(tmp[:0], uint64(h.BinarySize()))
		if _, err := w.Write(delim); err != nil {
			return err
		}
		if err := h.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadAt copies up to len(p) bytes of the entry's serialized form
// starting at offset off, returning the number of bytes written. A
// zero return means off is at or past the end of the entry.
//
// The offset is threaded through the regions (common header, then each
// header's delimiter and bytes) with running subtraction, so repeated
// calls with arbitrarily small buffers reproduce Encode's output
// byte-for-byte.
func (e *Entry) ReadAt(p []byte, off int) int {
	n := 0
	off, n = ReadStage(p, off, n, e.common[:])

	var tmp [maxDelimiterSize]byte
	for _, h := range e.headers {
		size := h.BinarySize()
		delim := protowire.AppendVarint(tmp[:0], uint64(size))
		off, n = ReadStage(p, off, n, delim)
		off, n = ReadStageAt(p, off, n, size, h.ReadAt)
	}
	return n
}

// Decode decodes an entry from buf, dispatching on the leading magic
// byte. Unknown versions fail with ErrInvalidMagic. The returned entry
// aliases buf.
func Decode(buf []byte) (*Entry, error) {
	if len(buf) == 0 {
		return nil, ErrBufferTooShort
	}
	magic, err := ParseMagic(buf[0])
	if err != nil {
		return nil, err
	}
	switch magic {
	case MagicV1:
		return decodeV1(magic, buf[1:])
	}
	return nil, ErrInvalidMagic
}

// decodeV1 reconstructs a V1 entry from the already-read magic byte
// and the rest of the buffer. The last header decoded becomes the kv
// header; a payload with zero headers fails with ErrKVNotFound.
func decodeV1(magic Magic, buf []byte) (*Entry, error) {
	if len(buf) < commonHeaderSize-1 {
		return nil, ErrBufferTooShort
	}
	e := &Entry{}
	e.common[magicOffset] = byte(magic)
	copy(e.common[1:], buf[:commonHeaderSize-1])
	buf = buf[commonHeaderSize-1:]

	for len(buf) > 0 {
		size, n := protowire.ConsumeVarint(buf)
		if n < 0 {
			return nil, fmt.Errorf("header size delimiter: %w", protowire.ParseError(n))
		}
		buf = buf[n:]
		if size > uint64(len(buf)) {
			return nil, ErrBufferTooShort
		}
		h, err := DecodeHeader(buf[:size])
		if err != nil {
			return nil, err
		}
		e.headers = append(e.headers, h)
		buf = buf[size:]
	}
	if len(e.headers) == 0 {
		return nil, ErrKVNotFound
	}
	return e, nil
}
