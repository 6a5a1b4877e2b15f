package codec

import (
	"bytes"
	"fmt"
	"io"
	"testing"
)

func benchEntry(b *testing.B, valueSize int) *Entry {
	b.Helper()
	entry, err := NewBuilder().
		LogID(1).
		EntryID(2).
		LastConfirmID(1).
		Header(NewHeader([]byte("source"), []byte("bench"))).
		KV([]byte("benchmark-key"), bytes.Repeat([]byte("v"), valueSize)).
		Build()
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	return entry
}

func BenchmarkEntry_Encode(b *testing.B) {
	for _, size := range []int{64, 1024, 64 * 1024} {
		entry := benchEntry(b, size)
		b.Run(fmt.Sprintf("value_%dB", size), func(b *testing.B) {
			b.SetBytes(int64(entry.BinarySize()))
			for i := 0; i < b.N; i++ {
				if err := entry.Encode(io.Discard); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEntry_ReadAt(b *testing.B) {
	entry := benchEntry(b, 64*1024)
	for _, window := range []int{64, 4096} {
		buf := make([]byte, window)
		b.Run(fmt.Sprintf("window_%dB", window), func(b *testing.B) {
			b.SetBytes(int64(entry.BinarySize()))
			for i := 0; i < b.N; i++ {
				offset := 0
				for {
					n := entry.ReadAt(buf, offset)
					if n == 0 {
						break
					}
					offset += n
				}
			}
		})
	}
}

func BenchmarkEntry_Decode(b *testing.B) {
	entry := benchEntry(b, 1024)
	var buf bytes.Buffer
	if err := entry.Encode(&buf); err != nil {
		b.Fatal(err)
	}
	encoded := buf.Bytes()

	b.SetBytes(int64(len(encoded)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(encoded); err != nil {
			b.Fatal(err)
		}
	}
}
