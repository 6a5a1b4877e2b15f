// Package journal writes framed, checksummed entries to an append-only
// sink and reads them back.
//
// # Frame Format
//
// Each appended entry produces one frame on the sink:
//
//	[varint(entry.BinarySize())][entry bytes][CRC-32C(4, little-endian)]
//
// The checksum uses the Castagnoli polynomial and covers exactly the
// entry's encoded bytes; the size delimiter and the checksum itself are
// excluded.
//
// # Writer
//
// Writer owns a fixed-capacity buffer and drives the entry's resumable
// encoder into it, flushing to the sink whenever the buffer fills. Peak
// memory is the buffer capacity regardless of entry size. Sync forces
// the sink's durability barrier but deliberately does not flush: a
// caller that needs the latest appends durable must Flush first (or
// use Close, which does both).
//
// A failed flush mid-append leaves the journal tail in an unknown,
// possibly truncated state; there is no rollback. Repair belongs to
// whatever recovery logic runs at journal-open time.
//
// # Concurrency
//
// One Writer owns its buffer and sink exclusively and expects a single
// caller goroutine; there is no internal locking. Concurrent use must
// be serialized by the caller, typically with one dedicated writer
// goroutine fed over a channel.
package journal
