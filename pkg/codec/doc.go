// Package codec implements the versioned binary format for Muninn log
// entries. This is the record layer of the journal: it defines what one
// entry looks like on the wire and how it is encoded, decoded, and
// streamed into bounded buffers.
//
// # Entry Format (V1)
//
// An entry is serialized as a fixed common header followed by one or
// more length-framed key/value headers, little-endian throughout:
//
//	[Magic(1)][Attr(4)][LogID(8)][EntryID(8)][LastConfirmID(8)]   29 bytes
//	( [varint(size(h))][h] )*                                     auxiliary headers
//	[varint(size(kv))][kv]                                        kv header, always last
//
// Fields:
//   - Magic: format version discriminator (0x01 for V1)
//   - Attr: opaque caller-defined record tag
//   - LogID/EntryID: identity of the record within its log
//   - LastConfirmID: last-add-confirmed identifier carried for the
//     replication protocol above this layer
//
// A header is itself length-framed:
//
//	[varint(len(key))][key][value]
//
// Only the key length is self-describing; the value is whatever remains
// of the enclosing size window. A header can therefore only be decoded
// from a buffer truncated to exactly its binary size, which is why each
// header occurrence inside an entry carries its own outer varint size.
//
// A decoded entry always has a kv header; a payload with zero headers
// fails with ErrKVNotFound.
//
// # Streaming Encode
//
// Besides one-shot Encode, Entry and Header expose ReadAt: a resumable
// encoder that copies an arbitrary sub-range of the serialized form
// into a destination buffer. For any split of the serialized bytes into
// consecutive ReadAt calls, the concatenated output is byte-identical
// to Encode. This is what lets the journal writer fill a fixed-capacity
// buffer across repeated calls without ever materializing a whole
// entry.
//
// # Usage
//
// Entries are constructed through the builder:
//
//	entry, err := codec.NewBuilder().
//	    LogID(1).
//	    EntryID(2).
//	    LastConfirmID(3).
//	    KV([]byte("key"), []byte("value")).
//	    Build()
//
// and decoded from bytes with codec.Decode, which dispatches on the
// magic byte. Unknown versions fail with ErrInvalidMagic; they are
// never silently mapped to a default.
//
// # Thread Safety
//
// Entry and Header values are immutable after construction and safe to
// share between goroutines. Decoded values alias the input buffer; the
// caller must not mutate it while the entry is in use.
package codec
