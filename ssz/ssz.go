// Package ssz implements Simple Serialize (SSZ), the serialization and
// Merkleization format used by the Ethereum consensus layer. SSZ provides
// deterministic encoding and a Merkle hash-tree root over the same typed
// values, so independent implementations agree byte-for-byte and
// hash-for-hash.
//
// The package operates purely on in-memory buffers: it does not choose a
// hash primitive beyond binding the digest function to SHA-256, does not
// define concrete consensus types, and does not perform network or file
// I/O. Experimental stable-container and progressive-list extensions
// (EIP-7495, EIP-7916, EIP-7688) are out of scope.
//
// Spec: https://github.com/ethereum/consensus-specs/blob/dev/ssz/simple-serialize.md
package ssz

// BytesPerLengthOffset is the number of bytes used for each offset in
// variable-length SSZ containers (4 bytes, little-endian uint32).
const BytesPerLengthOffset = 4

// BytesPerChunk is the number of bytes in each Merkleization leaf.
const BytesPerChunk = 32

// Marshaler is implemented by types that can serialize themselves to SSZ.
type Marshaler interface {
	MarshalSSZ() ([]byte, error)
	SizeSSZ() int
}

// Unmarshaler is implemented by types that can deserialize themselves from SSZ.
type Unmarshaler interface {
	UnmarshalSSZ([]byte) error
}

// HashRoot is implemented by types that can compute their SSZ hash tree root.
type HashRoot interface {
	HashTreeRoot() ([32]byte, error)
}

// Type is the full capability set the codec dispatches over: a value that
// can serialize, deserialize into itself, and root itself, and that can
// report its own shape through TypeInfo.
type Type interface {
	Marshaler
	Unmarshaler
	HashRoot
	TypeInfo() TypeInfo
}
