// option.go implements the Option[T] wrapper kind (§4.4): a value that is
// either absent or present-and-T, tagged with a single presence byte.
package ssz

// Option wraps a possibly-absent value of type T.
type Option[T Element] struct {
	present bool
	value   T
}

// Some wraps a present value.
func Some[T Element](value T) Option[T] {
	return Option[T]{present: true, value: value}
}

// None returns an absent Option[T].
func None[T Element]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.present }

// Get returns the wrapped value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// MarshalSSZ encodes the option: 0x00 when absent, 0x01 followed by T's
// encoding otherwise.
func (o Option[T]) MarshalSSZ() ([]byte, error) {
	if !o.present {
		return MarshalOption(false, nil), nil
	}
	v, err := o.value.MarshalSSZ()
	if err != nil {
		return nil, err
	}
	return MarshalOption(true, v), nil
}

// SizeSSZ returns the current serialized byte length.
func (o Option[T]) SizeSSZ() int {
	if !o.present {
		return 1
	}
	b, err := o.MarshalSSZ()
	if err != nil {
		return -1
	}
	return len(b)
}

// HashTreeRoot computes the option's hash tree root: mix_in_length of the
// zero root with tag 0 when absent, or of T's own root with tag 1 when
// present.
func (o Option[T]) HashTreeRoot() ([32]byte, error) {
	if !o.present {
		return HashTreeRootOption(false, [32]byte{}), nil
	}
	r, err := o.value.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	return HashTreeRootOption(true, r), nil
}

// TypeInfo reports this Option's SSZ shape: always variable-size.
func (o Option[T]) TypeInfo() TypeInfo { return OptionTypeInfo() }
