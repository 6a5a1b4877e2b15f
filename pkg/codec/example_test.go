package codec_test

import (
	"bytes"
	"fmt"

	"github.com/muninndb/muninn/pkg/codec"
)

func ExampleBuilder() {
	entry, err := codec.NewBuilder().
		LogID(7).
		EntryID(42).
		LastConfirmID(41).
		Header(codec.NewHeader([]byte("producer"), []byte("example"))).
		KV([]byte("user:123"), []byte("jane@example.com")).
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	var buf bytes.Buffer
	if err := entry.Encode(&buf); err != nil {
		fmt.Println("encode failed:", err)
		return
	}

	decoded, err := codec.Decode(buf.Bytes())
	if err != nil {
		fmt.Println("decode failed:", err)
		return
	}

	fmt.Printf("log=%d entry=%d lac=%d\n", decoded.LogID(), decoded.EntryID(), decoded.LastConfirmID())
	fmt.Printf("kv=%s=%s headers=%d\n", decoded.Key(), decoded.Value(), len(decoded.Headers()))
	// Output:
	// log=7 entry=42 lac=41
	// kv=user:123=jane@example.com headers=1
}

func ExampleEntry_ReadAt() {
	entry, err := codec.NewBuilder().
		LogID(1).
		EntryID(1).
		LastConfirmID(0).
		KV([]byte("key"), []byte("value")).
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	// Stream the entry through a 16-byte window, the way the journal
	// writer fills its fixed buffer.
	window := make([]byte, 16)
	var out []byte
	offset := 0
	for {
		n := entry.ReadAt(window, offset)
		if n == 0 {
			break
		}
		out = append(out, window[:n]...)
		offset += n
	}

	fmt.Printf("reassembled %d of %d bytes\n", len(out), entry.BinarySize())
	// Output:
	// reassembled 39 of 39 bytes
}
