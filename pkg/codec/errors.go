package codec

// Errors
var (
	ErrInvalidMagic   = &CodecError{"invalid magic"}
	ErrKVNotFound     = &CodecError{"entry has no kv header"}
	ErrKVNotSet       = &CodecError{"kv header not set on builder"}
	ErrBufferTooShort = &CodecError{"decode buffer too short"}
)

// CodecError represents an entry codec error
type CodecError struct {
	Message string
}

func (e *CodecError) Error() string {
	return e.Message
}
