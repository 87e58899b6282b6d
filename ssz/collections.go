// collections.go implements the Vector[T,N] and List[T,Nmax] wrapper
// kinds (§4.4): Vector is a fixed-length homogeneous sequence, List is a
// variable-length homogeneous sequence bounded by Nmax. Both attach their
// capacity to the type via a constructor argument, since Go's generics
// cannot parametrize a type over an integer constant the way the SSZ
// spec's own notation does.
package ssz

import "errors"

// Collection errors.
var (
	ErrVectorLengthMismatch = errors.New("ssz: vector length mismatch")
	ErrListTooLong          = errors.New("ssz: list exceeds max length")
	ErrListZeroCapacity     = errors.New("ssz: list capacity must be positive")
)

// Element is the capability set every Vector/List element type must
// satisfy: it can serialize itself, report its own shape, and compute its
// own hash tree root.
type Element interface {
	Marshaler
	HashRoot
	TypeInfo() TypeInfo
}

// Vector is a fixed-length, homogeneous sequence of N elements of type T.
type Vector[T Element] struct {
	elements []T
	n        int
}

// NewVector wraps exactly n elements as a Vector[T,N]. It returns
// ErrVectorLengthMismatch if len(elements) != n.
func NewVector[T Element](elements []T, n int) (Vector[T], error) {
	if len(elements) != n {
		return Vector[T]{}, ErrVectorLengthMismatch
	}
	cp := make([]T, n)
	copy(cp, elements)
	return Vector[T]{elements: cp, n: n}, nil
}

// Len returns N.
func (v Vector[T]) Len() int { return v.n }

// Get returns the element at index.
func (v Vector[T]) Get(index int) T { return v.elements[index] }

// Elements returns the underlying slice. Callers must not mutate it.
func (v Vector[T]) Elements() []T { return v.elements }

// MarshalSSZ encodes the vector by concatenating each element's encoding
// (for fixed-size T) or by building the offset table (for variable-size
// T), per §4.1.
func (v Vector[T]) MarshalSSZ() ([]byte, error) {
	if v.n == 0 {
		return nil, nil
	}
	if !v.elements[0].TypeInfo().IsVariable() {
		parts := make([][]byte, v.n)
		for i, e := range v.elements {
			b, err := e.MarshalSSZ()
			if err != nil {
				return nil, err
			}
			parts[i] = b
		}
		return MarshalVector(parts), nil
	}
	parts := make([][]byte, v.n)
	for i, e := range v.elements {
		b, err := e.MarshalSSZ()
		if err != nil {
			return nil, err
		}
		parts[i] = b
	}
	return MarshalListOfVariable(parts), nil
}

// SizeSSZ returns the fixed byte length for a vector of fixed-size
// elements, or -1 if the element type is variable-size.
func (v Vector[T]) SizeSSZ() int {
	if v.n == 0 {
		return 0
	}
	info := v.elements[0].TypeInfo()
	if info.IsVariable() {
		return -1
	}
	return v.n * info.FixedSize
}

// HashTreeRoot computes the vector's hash tree root. Basic-type elements
// (uintN, bool) are packed into chunks per §4.3 rather than merkleized
// from per-element roots; composite elements contribute their own hash
// tree root as one chunk each, Merkleized with chunk limit N.
func (v Vector[T]) HashTreeRoot() ([32]byte, error) {
	if v.n == 0 {
		return HashTreeRootVector(nil), nil
	}
	if isBasicKind(v.elements[0].TypeInfo().Kind) {
		serialized, err := v.MarshalSSZ()
		if err != nil {
			return [32]byte{}, err
		}
		return HashTreeRootBasicVector(serialized), nil
	}
	roots := make([][32]byte, v.n)
	for i, e := range v.elements {
		r, err := e.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		roots[i] = r
	}
	return HashTreeRootVector(roots), nil
}

// CacheKey implements CacheKeyer, keying the root cache on a digest of the
// vector's own encoded form so an unchanged vector's hash tree root can be
// memoized by a Merkleizer configured with WithRootCache.
func (v Vector[T]) CacheKey() [32]byte {
	b, err := v.MarshalSSZ()
	if err != nil {
		return [32]byte{}
	}
	return Digest(b)
}

// TypeInfo reports this Vector's SSZ shape.
func (v Vector[T]) TypeInfo() TypeInfo {
	var elem TypeInfo
	if v.n > 0 {
		elem = v.elements[0].TypeInfo()
	}
	return VectorTypeInfo(elem, v.n)
}

// List is a variable-length, homogeneous sequence of at most Nmax
// elements of type T.
type List[T Element] struct {
	elements []T
	nMax     int
}

// NewList wraps elements as a List[T,Nmax], rejecting more than nMax of
// them (§3 invariant).
func NewList[T Element](elements []T, nMax int) (List[T], error) {
	if nMax <= 0 {
		return List[T]{}, ErrListZeroCapacity
	}
	if len(elements) > nMax {
		return List[T]{}, newSerializeError(ListTooLong, "list")
	}
	cp := make([]T, len(elements))
	copy(cp, elements)
	return List[T]{elements: cp, nMax: nMax}, nil
}

// Len returns the current element count.
func (l List[T]) Len() int { return len(l.elements) }

// Cap returns the Nmax capacity.
func (l List[T]) Cap() int { return l.nMax }

// Get returns the element at index.
func (l List[T]) Get(index int) T { return l.elements[index] }

// Elements returns the underlying slice. Callers must not mutate it.
func (l List[T]) Elements() []T { return l.elements }

// Append appends an element, returning ErrListTooLong if it would exceed
// Nmax.
func (l List[T]) Append(e T) (List[T], error) {
	if len(l.elements) >= l.nMax {
		return List[T]{}, newSerializeError(ListTooLong, "list")
	}
	out := make([]T, len(l.elements)+1)
	copy(out, l.elements)
	out[len(l.elements)] = e
	return List[T]{elements: out, nMax: l.nMax}, nil
}

// MarshalSSZ encodes the list by concatenating each element's encoding
// (for fixed-size T) or by building the offset table (for variable-size
// T), per §4.1. Callers must have validated len against Nmax already;
// MarshalSSZ re-checks and returns a SerializeError otherwise.
func (l List[T]) MarshalSSZ() ([]byte, error) {
	if len(l.elements) > l.nMax {
		return nil, newSerializeError(ListTooLong, "list")
	}
	if len(l.elements) == 0 {
		return nil, nil
	}
	parts := make([][]byte, len(l.elements))
	for i, e := range l.elements {
		b, err := e.MarshalSSZ()
		if err != nil {
			return nil, err
		}
		parts[i] = b
	}
	if l.elements[0].TypeInfo().IsVariable() {
		return MarshalListOfVariable(parts), nil
	}
	return MarshalList(parts), nil
}

// SizeSSZ returns the current serialized byte length. Lists are always
// variable-size at the type level even when the current value happens to
// occupy a deterministic width.
func (l List[T]) SizeSSZ() int {
	b, err := l.MarshalSSZ()
	if err != nil {
		return -1
	}
	return len(b)
}

// HashTreeRoot computes the list's hash tree root, mixed in with length.
// Basic-type elements (uintN, bool) are packed into chunks per §4.3 over
// the concatenated serialized bytes; composite elements are merkleized
// from their own per-element roots against the Nmax-derived chunk limit.
func (l List[T]) HashTreeRoot() ([32]byte, error) {
	if len(l.elements) > l.nMax {
		return [32]byte{}, newSerializeError(ListTooLong, "list")
	}
	if len(l.elements) == 0 {
		return HashTreeRootList(nil, l.nMax), nil
	}
	info := l.elements[0].TypeInfo()
	if isBasicKind(info.Kind) {
		serialized, err := l.MarshalSSZ()
		if err != nil {
			return [32]byte{}, err
		}
		return HashTreeRootBasicList(serialized, len(l.elements), info.FixedSize, l.nMax), nil
	}
	roots := make([][32]byte, len(l.elements))
	for i, e := range l.elements {
		r, err := e.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		roots[i] = r
	}
	return HashTreeRootList(roots, l.nMax), nil
}

// CacheKey implements CacheKeyer, keying the root cache on a digest of the
// list's own encoded form so an unchanged list's hash tree root can be
// memoized by a Merkleizer configured with WithRootCache.
func (l List[T]) CacheKey() [32]byte {
	b, err := l.MarshalSSZ()
	if err != nil {
		return [32]byte{}
	}
	return Digest(b)
}

// TypeInfo reports this List's SSZ shape.
func (l List[T]) TypeInfo() TypeInfo {
	var elem TypeInfo
	if len(l.elements) > 0 {
		elem = l.elements[0].TypeInfo()
	}
	return ListTypeInfo(elem, l.nMax)
}
