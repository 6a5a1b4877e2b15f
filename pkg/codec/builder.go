package codec

import (
	"encoding/binary"
)

// Builder accumulates entry fields and produces an Entry. Integer
// setters write straight into the fixed common-header layout, so the
// builder's internal representation already matches the wire form and
// Build only has to attach the headers.
//
// A Builder is single-use: Build hands its header slice to the entry.
type Builder struct {
	common  [commonHeaderSize]byte
	kv      *Header
	headers []Header
}

// NewBuilder returns a builder for a V1 entry with zeroed IDs and the
// default attr.
func NewBuilder() *Builder {
	b := &Builder{}
	b.common[magicOffset] = byte(MagicV1)
	return b
}

// Attr sets the entry's caller-defined tag.
func (b *Builder) Attr(attr Attr) *Builder {
	binary.LittleEndian.PutUint32(b.common[attrOffset:], uint32(attr))
	return b
}

// LogID sets the ID of the log the entry belongs to.
func (b *Builder) LogID(id int64) *Builder {
	binary.LittleEndian.PutUint64(b.common[logIDOffset:], uint64(id))
	return b
}

// EntryID sets the entry's ID within its log.
func (b *Builder) EntryID(id int64) *Builder {
	binary.LittleEndian.PutUint64(b.common[entryIDOffset:], uint64(id))
	return b
}

// LastConfirmID sets the last-add-confirmed ID carried by the entry.
func (b *Builder) LastConfirmID(id int64) *Builder {
	binary.LittleEndian.PutUint64(b.common[lastConfirmIDOffset:], uint64(id))
	return b
}

// KV sets the entry's designated key/value header.
func (b *Builder) KV(key, value []byte) *Builder {
	h := NewHeader(key, value)
	b.kv = &h
	return b
}

// Header appends an auxiliary header. Call order is preserved on the
// wire.
func (b *Builder) Header(h Header) *Builder {
	b.headers = append(b.headers, h)
	return b
}

// Build produces the entry. The kv header is mandatory: Build fails
// with ErrKVNotSet when KV was never called.
func (b *Builder) Build() (*Entry, error) {
	if b.kv == nil {
		return nil, ErrKVNotSet
	}
	headers := append(b.headers, *b.kv)
	return &Entry{common: b.common, headers: headers}, nil
}
