package journal

import (
	"encoding/binary"
	"hash/crc32"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/muninndb/muninn/pkg/codec"
)

// checksumSize is the width of the CRC-32C trailer.
const checksumSize = 4

// castagnoli is the CRC-32C table shared by writer and reader.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// entryContext frames one entry for the writer: size delimiter, entry
// bytes, checksum trailer. It lives for the duration of a single
// AppendEntry call.
type entryContext struct {
	entry  *codec.Entry
	delim  []byte
	size   int
	sum    [checksumSize]byte
	summed bool
}

func newEntryContext(e *codec.Entry) *entryContext {
	entrySize := e.BinarySize()
	delim := protowire.AppendVarint(nil, uint64(entrySize))
	return &entryContext{
		entry: e,
		delim: delim,
		size:  len(delim) + entrySize + checksumSize,
	}
}

// binarySize returns the framed size: delimiter + entry + checksum.
func (c *entryContext) binarySize() int {
	return c.size
}

// checksum returns the little-endian CRC-32C over exactly the entry's
// encoded bytes, excluding the delimiter and the checksum itself. It
// is computed once by streaming the full encoding through the digest,
// so the value cannot depend on read granularity.
func (c *entryContext) checksum() []byte {
	if !c.summed {
		h := crc32.New(castagnoli)
		// Writes to a hash cannot fail.
		_ = c.entry.Encode(h)
		binary.LittleEndian.PutUint32(c.sum[:], h.Sum32())
		c.summed = true
	}
	return c.sum[:]
}

// readAt copies up to len(p) bytes of the framed record starting at
// offset off, returning the number of bytes written. A zero return
// means off is at or past the end of the frame. Consecutive calls
// reassemble the frame exactly, whatever the split.
func (c *entryContext) readAt(p []byte, off int) int {
	n := 0
	off, n = codec.ReadStage(p, off, n, c.delim)
	off, n = codec.ReadStageAt(p, off, n, c.entry.BinarySize(), c.entry.ReadAt)
	_, n = codec.ReadStage(p, off, n, c.checksum())
	return n
}
