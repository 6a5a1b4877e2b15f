//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"
)

// FuzzEntry_RoundTrip tests encode/decode round-trip with random inputs
func FuzzEntry_RoundTrip(f *testing.F) {
	f.Add([]byte("key"), []byte("value"), []byte("aux"), int64(1), int64(2), int64(3), int32(0))
	f.Add([]byte(""), []byte(""), []byte(""), int64(-1), int64(0), int64(-2), int32(-5))
	f.Add([]byte{0x00, 0x01}, []byte{0xFF}, []byte{0x80}, int64(1<<40), int64(7), int64(6), int32(9))

	f.Fuzz(func(t *testing.T, key, value, aux []byte, logID, entryID, lac int64, attr int32) {
		if len(key) > 10000 || len(value) > 100000 || len(aux) > 10000 {
			t.Skip("input too large for fuzz test")
		}

		entry, err := NewBuilder().
			LogID(logID).
			EntryID(entryID).
			Attr(Attr(attr)).
			LastConfirmID(lac).
			Header(NewHeader(aux, aux)).
			KV(key, value).
			Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}

		var buf bytes.Buffer
		if err := entry.Encode(&buf); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if buf.Len() != entry.BinarySize() {
			t.Fatalf("encoded length = %d, want BinarySize %d", buf.Len(), entry.BinarySize())
		}

		decoded, err := Decode(buf.Bytes())
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if decoded.LogID() != logID || decoded.EntryID() != entryID ||
			decoded.LastConfirmID() != lac || decoded.Attr() != Attr(attr) {
			t.Fatalf("field mismatch: %+v", decoded)
		}
		if !bytes.Equal(decoded.Key(), key) || !bytes.Equal(decoded.Value(), value) {
			t.Fatalf("kv mismatch: got (%q, %q), want (%q, %q)",
				decoded.Key(), decoded.Value(), key, value)
		}
	})
}

// FuzzEntry_ReadAtEquivalence tests that chunked reads always match Encode
func FuzzEntry_ReadAtEquivalence(f *testing.F) {
	f.Add([]byte("key"), []byte("value"), uint(1))
	f.Add([]byte(""), []byte("v"), uint(4))
	f.Add([]byte("k"), bytes.Repeat([]byte("v"), 500), uint(7))

	f.Fuzz(func(t *testing.T, key, value []byte, step uint) {
		if len(key) > 10000 || len(value) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		entry, err := NewBuilder().KV(key, value).Build()
		if err != nil {
			t.Fatalf("Build: %v", err)
		}

		var want bytes.Buffer
		if err := entry.Encode(&want); err != nil {
			t.Fatalf("Encode: %v", err)
		}

		size := int(step%uint(entry.BinarySize())) + 1
		buf := make([]byte, size)
		var all []byte
		offset := 0
		for {
			n := entry.ReadAt(buf, offset)
			all = append(all, buf[:n]...)
			offset += n
			if n == 0 {
				break
			}
		}
		if !bytes.Equal(all, want.Bytes()) {
			t.Fatalf("step %d: chunked output differs from Encode", size)
		}
		if offset != entry.BinarySize() {
			t.Fatalf("step %d: total = %d, want %d", size, offset, entry.BinarySize())
		}
	})
}

// FuzzDecode_Malformed tests that arbitrary input never panics the decoder
func FuzzDecode_Malformed(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Add(make([]byte, 29))
	f.Add(append(make([]byte, 29), 0xFF, 0xFF, 0xFF))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 100000 {
			t.Skip("input too large for fuzz test")
		}

		entry, err := Decode(data)
		if err != nil {
			return
		}
		// Whatever decoded must re-encode to its own BinarySize.
		var buf bytes.Buffer
		if err := entry.Encode(&buf); err != nil {
			t.Fatalf("re-encode of decoded entry failed: %v", err)
		}
		if buf.Len() != entry.BinarySize() {
			t.Fatalf("re-encoded length = %d, want %d", buf.Len(), entry.BinarySize())
		}
	})
}
