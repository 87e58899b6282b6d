package ssz

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// --- Basic type encoding ---

// MarshalBool encodes a boolean as a single byte: 0x01 for true, 0x00 for false.
func MarshalBool(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// MarshalUint8 encodes a uint8 as a single byte.
func MarshalUint8(v uint8) []byte {
	return []byte{v}
}

// MarshalUint16 encodes a uint16 as 2 bytes little-endian.
func MarshalUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// MarshalUint32 encodes a uint32 as 4 bytes little-endian.
func MarshalUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// MarshalUint64 encodes a uint64 as 8 bytes little-endian.
func MarshalUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// MarshalUint128 encodes a 128-bit unsigned integer (as [2]uint64, little-endian
// limbs: lo, hi) into 16 bytes little-endian.
func MarshalUint128(lo, hi uint64) []byte {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
	return b
}

// MarshalUint256 encodes a 256-bit unsigned integer into 32 bytes
// little-endian. v is a *uint256.Int (github.com/holiman/uint256), the
// same representation the rest of a consensus-layer client uses for
// 256-bit values (balances, total difficulty, etc).
func MarshalUint256(v *uint256.Int) []byte {
	b := v.Bytes32() // big-endian
	out := make([]byte, 32)
	for i := 0; i < 32; i++ {
		out[i] = b[31-i]
	}
	return out
}

// --- Composite type encoding ---

// MarshalVector encodes a fixed-length vector of fixed-size elements by
// concatenating each element's SSZ encoding.
func MarshalVector(elements [][]byte) []byte {
	var out []byte
	for _, e := range elements {
		out = append(out, e...)
	}
	return out
}

// MarshalFixedContainer encodes a container where all fields are fixed-size
// by concatenating each field's SSZ encoding.
func MarshalFixedContainer(fields [][]byte) []byte {
	return MarshalVector(fields)
}

// MarshalList encodes a variable-length list of fixed-size elements.
// This is the same as MarshalVector but semantically different (lists have a
// max length and mix_in_length during Merkleization). Callers are
// responsible for checking len(elements) against Nmax before calling.
func MarshalList(elements [][]byte) []byte {
	return MarshalVector(elements)
}

// MarshalVariableContainer encodes a container that has variable-length
// fields. fixedParts holds the encoded fixed-size fields (nil at the
// indices named by variableIndices); variableParts holds the encoded
// variable-size fields in declaration order; variableIndices names which
// fixedParts slots are actually variable-size field offset slots. The
// first offset written equals the total fixed-part width, as required by
// §4.1.
func MarshalVariableContainer(fixedParts [][]byte, variableParts [][]byte, variableIndices []int) []byte {
	fixedSize := 0
	for i, fp := range fixedParts {
		if isVariableIndex(i, variableIndices) {
			fixedSize += BytesPerLengthOffset
		} else {
			fixedSize += len(fp)
		}
	}

	offsets := make([]uint32, len(variableParts))
	currentOffset := uint32(fixedSize)
	for i, vp := range variableParts {
		offsets[i] = currentOffset
		currentOffset += uint32(len(vp))
	}

	out := make([]byte, 0, int(currentOffset))
	varIdx := 0
	for i, fp := range fixedParts {
		if isVariableIndex(i, variableIndices) {
			var ob [4]byte
			binary.LittleEndian.PutUint32(ob[:], offsets[varIdx])
			out = append(out, ob[:]...)
			varIdx++
		} else {
			out = append(out, fp...)
		}
	}
	for _, vp := range variableParts {
		out = append(out, vp...)
	}
	return out
}

func isVariableIndex(idx int, variableIndices []int) bool {
	for _, vi := range variableIndices {
		if vi == idx {
			return true
		}
	}
	return false
}

// MarshalListOfVariable encodes a List/Vector of variable-size T: N
// head-relative offsets followed by the N concatenated variable payloads.
// The first offset equals 4*N.
func MarshalListOfVariable(elements [][]byte) []byte {
	n := len(elements)
	head := n * BytesPerLengthOffset
	out := make([]byte, 0, head+sumLen(elements))
	offset := uint32(head)
	for _, e := range elements {
		var ob [4]byte
		binary.LittleEndian.PutUint32(ob[:], offset)
		out = append(out, ob[:]...)
		offset += uint32(len(e))
	}
	for _, e := range elements {
		out = append(out, e...)
	}
	return out
}

func sumLen(elements [][]byte) int {
	n := 0
	for _, e := range elements {
		n += len(e)
	}
	return n
}

// --- Bitfield encoding ---

// MarshalBitvector encodes a bitvector of exactly n bits. The bits are packed
// into bytes with the least significant bit first.
func MarshalBitvector(bits []bool) []byte {
	numBytes := (len(bits) + 7) / 8
	out := make([]byte, numBytes)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// MarshalBitlist encodes a bitlist by appending the terminating sentinel
// bit after the last data bit and packing LSB-first.
func MarshalBitlist(bits []bool) []byte {
	withSentinel := make([]bool, len(bits)+1)
	copy(withSentinel, bits)
	withSentinel[len(bits)] = true
	return MarshalBitvector(withSentinel)
}

// MarshalByteVector encodes a fixed-length byte vector (ByteVector[N]).
func MarshalByteVector(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// MarshalByteList encodes a variable-length byte list (ByteList[N]).
func MarshalByteList(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

// --- Option / Union encoding ---

// MarshalOption encodes Option[T]: 0x00 when absent, 0x01 followed by the
// present value's encoding otherwise.
func MarshalOption(present bool, value []byte) []byte {
	if !present {
		return []byte{0}
	}
	out := make([]byte, 0, 1+len(value))
	out = append(out, 1)
	out = append(out, value...)
	return out
}

// MarshalUnionValue encodes a union: one selector byte followed by the
// selected variant's encoding.
func MarshalUnionValue(selector byte, value []byte) []byte {
	out := make([]byte, 0, 1+len(value))
	out = append(out, selector)
	out = append(out, value...)
	return out
}
