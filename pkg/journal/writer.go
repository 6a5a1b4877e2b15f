package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/muninndb/muninn/pkg/codec"
)

// Writer appends framed, checksummed entries to an append-only sink
// through a fixed-capacity write buffer.
type Writer struct {
	sink    Sink
	buf     []byte
	cursor  int
	size    int64
	metrics *Metrics
}

// NewWriter creates a journal writer with the given configuration. The
// buffer capacity is fixed for the writer's lifetime.
func NewWriter(config WriterConfig) (*Writer, error) {
	if config.Sink == nil {
		return nil, fmt.Errorf("journal: sink is required")
	}
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}
	return &Writer{
		sink:    config.Sink,
		buf:     make([]byte, config.BufferSize),
		metrics: config.Metrics,
	}, nil
}

// Size returns the total number of bytes this writer has produced over
// its lifetime, including bytes still sitting in the buffer.
func (w *Writer) Size() int64 {
	return w.size
}

// AppendEntry frames the entry (size delimiter, entry bytes, CRC-32C
// trailer) into the write buffer, flushing to the sink whenever the
// buffer fills. The buffer is the only place entry bytes are
// materialized, so peak memory stays bounded regardless of entry size.
//
// If a flush fails mid-append the journal tail is left in an unknown,
// possibly truncated state; the error is returned unchanged and no
// rollback is attempted.
func (w *Writer) AppendEntry(entry *codec.Entry) error {
	ctx := newEntryContext(entry)
	total := ctx.binarySize()

	offset := 0
	for offset < total {
		if w.cursor == len(w.buf) {
			if err := w.Flush(); err != nil {
				return err
			}
		}
		// The destination slice is never empty here: the buffer was
		// just flushed if it was full.
		n := ctx.readAt(w.buf[w.cursor:], offset)
		w.cursor += n
		offset += n
		w.size += int64(n)
	}

	if w.metrics != nil {
		w.metrics.RecordAppend(total)
	}
	return nil
}

// Flush writes the buffered bytes to the sink and resets the cursor.
// A sink error is propagated unchanged and the buffered bytes are
// lost.
func (w *Writer) Flush() error {
	if w.cursor == 0 {
		return nil
	}
	n := w.cursor
	w.cursor = 0
	if _, err := w.sink.Write(w.buf[:n]); err != nil {
		if w.metrics != nil {
			w.metrics.RecordFlushError()
		}
		return err
	}
	if w.metrics != nil {
		w.metrics.RecordFlush()
	}
	return nil
}

// Sync forces the sink's durability barrier. It does not flush the
// write buffer: callers that need the latest appends covered must call
// Flush first.
func (w *Writer) Sync() error {
	start := time.Now()
	err := w.sink.Sync()
	if w.metrics != nil {
		w.metrics.RecordSync(time.Since(start))
	}
	return err
}

// Close flushes and syncs, then closes the sink if it is closable.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}
	if err := w.Sync(); err != nil {
		return err
	}
	if closer, ok := w.sink.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
