package codec

// The ReadAt implementations in this package all do the same thing:
// copy a logically contiguous byte sequence, made of several
// variable-length regions, into a possibly-smaller destination buffer
// starting at an arbitrary offset. The helpers below thread a running
// region-relative offset and a running output count across regions.
// Each fully skipped region subtracts its size from the offset, so a
// call re-entered at any offset never recomputes absolute positions.

// CopyAt copies src[off:] into dst and reports the number of bytes
// copied. It returns 0 once off is at or past the end of src.
func CopyAt(dst, src []byte, off int) int {
	if off >= len(src) {
		return 0
	}
	return copy(dst, src[off:])
}

// ReadStage copies one region of a multi-region serialized value. off
// is the offset relative to the start of this region and n the number
// of bytes already written into dst by earlier regions. It returns the
// offset relative to the next region and the updated count.
func ReadStage(dst []byte, off, n int, src []byte) (int, int) {
	if off < len(src) {
		return 0, n + CopyAt(dst[n:], src, off)
	}
	return off - len(src), n
}

// ReadStageAt is ReadStage for regions that are not materialized as a
// single slice. size is the region's full length; read copies from a
// region-relative offset and reports the bytes written.
func ReadStageAt(dst []byte, off, n, size int, read func(dst []byte, off int) int) (int, int) {
	if off < size {
		return 0, n + read(dst[n:], off)
	}
	return off - size, n
}
