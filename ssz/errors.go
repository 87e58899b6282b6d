package ssz

import "fmt"

// SerializeErrorKind enumerates the caller-side violations the encoder can
// detect. Encoding of well-typed, in-bounds values never fails otherwise.
type SerializeErrorKind int

const (
	ListTooLong SerializeErrorKind = iota
	BitListTooLong
	InvalidUnionSelector
)

func (k SerializeErrorKind) String() string {
	switch k {
	case ListTooLong:
		return "list too long"
	case BitListTooLong:
		return "bitlist too long"
	case InvalidUnionSelector:
		return "invalid union selector"
	default:
		return "unknown serialize error"
	}
}

// SerializeError reports a caller-side encoding violation.
type SerializeError struct {
	Kind  SerializeErrorKind
	Field string
	Err   error
}

func (e *SerializeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("ssz: serialize %s: %s", e.Field, e.Kind)
	}
	return fmt.Sprintf("ssz: serialize: %s", e.Kind)
}

func (e *SerializeError) Unwrap() error { return e.Err }

func newSerializeError(kind SerializeErrorKind, field string) *SerializeError {
	return &SerializeError{Kind: kind, Field: field}
}

// DeserializeErrorKind enumerates the input-validation failures the
// decoder can detect (§4.2).
type DeserializeErrorKind int

const (
	InvalidByteLength DeserializeErrorKind = iota
	OffsetOutOfBounds
	OffsetsNotMonotonic
	InvalidBool
	InvalidBitlistTerminator
	InvalidSelector
	MaxLengthExceeded
	InvalidLength
)

func (k DeserializeErrorKind) String() string {
	switch k {
	case InvalidByteLength:
		return "invalid byte length"
	case OffsetOutOfBounds:
		return "offset out of bounds"
	case OffsetsNotMonotonic:
		return "offsets not monotonic"
	case InvalidBool:
		return "invalid bool"
	case InvalidBitlistTerminator:
		return "invalid bitlist terminator"
	case InvalidSelector:
		return "invalid selector"
	case MaxLengthExceeded:
		return "max length exceeded"
	case InvalidLength:
		return "invalid length"
	default:
		return "unknown deserialize error"
	}
}

// DeserializeError reports an input-validation failure. Offset is the
// byte position within the frame being decoded where the violation was
// detected, for diagnosability; Field names the container field or kind
// under decode when known.
type DeserializeError struct {
	Kind   DeserializeErrorKind
	Field  string
	Offset int
	Err    error
}

func (e *DeserializeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("ssz: deserialize %s at byte %d: %s", e.Field, e.Offset, e.Kind)
	}
	return fmt.Sprintf("ssz: deserialize at byte %d: %s", e.Offset, e.Kind)
}

func (e *DeserializeError) Unwrap() error { return e.Err }

func newDeserializeError(kind DeserializeErrorKind, field string, offset int) *DeserializeError {
	return &DeserializeError{Kind: kind, Field: field, Offset: offset}
}
