package codec

// Attr is an opaque caller-defined record tag carried in the common
// header. The codec attaches no semantics to it and performs no
// validation.
type Attr int32

// DefaultAttr is the zero tag.
const DefaultAttr Attr = 0

// Magic identifies the entry format version. The set of versions is
// closed: decoding dispatches on the magic byte at a single entry
// point, and adding a version means adding a constant and a case there.
type Magic byte

const (
	// MagicV1 is the current entry format.
	MagicV1 Magic = 0x01
)

// ParseMagic maps a wire byte to a format version. Unrecognized bytes
// fail with ErrInvalidMagic; they are never mapped to a default.
func ParseMagic(b byte) (Magic, error) {
	switch Magic(b) {
	case MagicV1:
		return MagicV1, nil
	default:
		return 0, ErrInvalidMagic
	}
}
