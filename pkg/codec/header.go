package codec

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// maxDelimiterSize is the largest varint length delimiter: a uint64
// never encodes to more than 10 base-128 bytes.
const maxDelimiterSize = 10

// Header is a length-framed key/value unit, the building block for
// entry auxiliary fields and the designated kv payload.
//
// Wire form: [varint(len(key))][key][value]. The value length is not
// self-describing; it is the remainder of an externally supplied size
// window, so a Header is always wrapped in an outer size delimiter
// when concatenated with others.
type Header struct {
	key   []byte
	value []byte
}

// NewHeader constructs a header. Empty key and value are allowed; no
// validation is performed. The header aliases the given slices.
func NewHeader(key, value []byte) Header {
	return Header{key: key, value: value}
}

// Key returns the header's key bytes.
func (h Header) Key() []byte {
	return h.key
}

// Value returns the header's value bytes.
func (h Header) Value() []byte {
	return h.value
}

// BinarySize returns the total size of the header when encoded.
func (h Header) BinarySize() int {
	return protowire.SizeVarint(uint64(len(h.key))) + len(h.key) + len(h.value)
}

// Encode writes the key length delimiter, the key, and the value to w.
// It fails only when w signals a write error.
func (h Header) Encode(w io.Writer) error {
	var tmp [maxDelimiterSize]byte
	delim := protowire.AppendVarint(tmp[:0], uint64(len(h.key)))
	if _, err := w.Write(delim); err != nil {
		return err
	}
	if _, err := w.Write(h.key); err != nil {
		return err
	}
	_, err := w.Write(h.value)
	return err
}

// DecodeHeader decodes a header from buf. buf must span exactly the
// header's binary size: the value is whatever remains after the key,
// so decoding from a wider window would mis-consume. The returned
// header aliases buf.
func DecodeHeader(buf []byte) (Header, error) {
	keyLen, n := protowire.ConsumeVarint(buf)
	if n < 0 {
		return Header{}, fmt.Errorf("header key delimiter: %w", protowire.ParseError(n))
	}
	if keyLen > uint64(len(buf)-n) {
		return Header{}, ErrBufferTooShort
	}
	end := n + int(keyLen)
	return Header{key: buf[n:end], value: buf[end:]}, nil
}

// ReadAt copies up to len(p) bytes of the header's serialized form
// starting at offset off, returning the number of bytes written. A
// zero return means off is at or past the end of the header. The
// output of consecutive calls, advancing off by each return value, is
// byte-identical to Encode.
func (h Header) ReadAt(p []byte, off int) int {
	var tmp [maxDelimiterSize]byte
	delim := protowire.AppendVarint(tmp[:0], uint64(len(h.key)))

	n := 0
	off, n = ReadStage(p, off, n, delim)
	off, n = ReadStage(p, off, n, h.key)
	_, n = ReadStage(p, off, n, h.value)
	return n
}
