package journal

import (
	"io"

	"github.com/muninndb/muninn/pkg/codec"
)

// Sink is the append-only byte destination a journal writes to. Sync
// forces the sink's durability barrier (fdatasync for files).
type Sink interface {
	io.Writer
	Sync() error
}

// Reader provides sequential access to the entries of a journal. It is
// the contract consumed by the recovery and replication layers above
// this one.
type Reader interface {
	Next() (*codec.Entry, error)
}

// EntryIterator provides streaming access to journal entries
type EntryIterator interface {
	Next() bool
	Entry() *codec.Entry
	Err() error
}

// DefaultBufferSize is the writer's buffer capacity when none is
// configured.
const DefaultBufferSize = 64 * 1024

// DefaultMaxEntrySize bounds the frame size a reader will accept; a
// corrupt delimiter must not translate into an arbitrary allocation.
const DefaultMaxEntrySize = 256 << 20

// WriterConfig holds configuration for the journal writer
type WriterConfig struct {
	Sink       Sink     // append-only destination
	BufferSize int      // write buffer capacity in bytes
	Metrics    *Metrics // optional instrumentation
}

// ReaderConfig holds configuration for the journal reader
type ReaderConfig struct {
	Source       io.Reader // journal byte stream
	MaxEntrySize int       // largest accepted frame, 0 = default
}

// Errors
var (
	ErrChecksumMismatch = &JournalError{"entry checksum mismatch"}
	ErrTruncatedFrame   = &JournalError{"truncated entry frame"}
	ErrFrameTooLarge    = &JournalError{"entry frame exceeds size limit"}
)

// JournalError represents a journal framing or integrity error
type JournalError struct {
	Message string
}

func (e *JournalError) Error() string {
	return e.Message
}
