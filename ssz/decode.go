package ssz

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// --- Basic type decoding ---

// UnmarshalBool decodes a boolean from a single byte. Any byte value other
// than 0x00 or 0x01 is rejected (§4.2, InvalidBool).
func UnmarshalBool(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, newDeserializeError(InvalidByteLength, "bool", 0)
	}
	switch data[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newDeserializeError(InvalidBool, "bool", 0)
	}
}

// UnmarshalUint8 decodes a uint8 from a single byte.
func UnmarshalUint8(data []byte) (uint8, error) {
	if len(data) != 1 {
		return 0, newDeserializeError(InvalidByteLength, "uint8", 0)
	}
	return data[0], nil
}

// UnmarshalUint16 decodes a uint16 from 2 bytes little-endian.
func UnmarshalUint16(data []byte) (uint16, error) {
	if len(data) != 2 {
		return 0, newDeserializeError(InvalidByteLength, "uint16", 0)
	}
	return binary.LittleEndian.Uint16(data), nil
}

// UnmarshalUint32 decodes a uint32 from 4 bytes little-endian.
func UnmarshalUint32(data []byte) (uint32, error) {
	if len(data) != 4 {
		return 0, newDeserializeError(InvalidByteLength, "uint32", 0)
	}
	return binary.LittleEndian.Uint32(data), nil
}

// UnmarshalUint64 decodes a uint64 from 8 bytes little-endian.
func UnmarshalUint64(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, newDeserializeError(InvalidByteLength, "uint64", 0)
	}
	return binary.LittleEndian.Uint64(data), nil
}

// UnmarshalUint128 decodes a 128-bit unsigned integer from 16 bytes
// little-endian, returning (lo, hi) limbs.
func UnmarshalUint128(data []byte) (lo, hi uint64, err error) {
	if len(data) != 16 {
		return 0, 0, newDeserializeError(InvalidByteLength, "uint128", 0)
	}
	lo = binary.LittleEndian.Uint64(data[0:8])
	hi = binary.LittleEndian.Uint64(data[8:16])
	return lo, hi, nil
}

// UnmarshalUint256 decodes a 256-bit unsigned integer from 32 bytes
// little-endian into a *uint256.Int.
func UnmarshalUint256(data []byte) (*uint256.Int, error) {
	if len(data) != 32 {
		return nil, newDeserializeError(InvalidByteLength, "uint256", 0)
	}
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = data[31-i]
	}
	return uint256.NewInt(0).SetBytes(be[:]), nil
}

// --- Composite type decoding ---

// UnmarshalVector decodes a vector of n fixed-size elements, each elemSize
// bytes long.
func UnmarshalVector(data []byte, n, elemSize int) ([][]byte, error) {
	if len(data) != n*elemSize {
		return nil, newDeserializeError(InvalidByteLength, "vector", len(data))
	}
	elements := make([][]byte, n)
	for i := 0; i < n; i++ {
		elem := make([]byte, elemSize)
		copy(elem, data[i*elemSize:(i+1)*elemSize])
		elements[i] = elem
	}
	return elements, nil
}

// UnmarshalList decodes a list of fixed-size elements, each elemSize bytes
// long, rejecting any decode that would produce more than nMax elements
// (§3 invariants). Pass nMax <= 0 to skip the capacity check (used by
// internal callers that enforce it at a different layer).
func UnmarshalList(data []byte, elemSize, nMax int) ([][]byte, error) {
	if elemSize == 0 {
		return nil, newDeserializeError(InvalidLength, "list", 0)
	}
	if len(data)%elemSize != 0 {
		return nil, newDeserializeError(InvalidByteLength, "list", len(data))
	}
	n := len(data) / elemSize
	if nMax > 0 && n > nMax {
		return nil, newDeserializeError(MaxLengthExceeded, "list", len(data))
	}
	return UnmarshalVector(data, n, elemSize)
}

// UnmarshalVariableContainer decodes a container with both fixed and
// variable fields. fixedSizes maps field index to its fixed byte size (0
// for variable fields). It validates, per §4.2, that the first offset
// equals the declared fixed-part width, that offsets are non-decreasing,
// and that every offset lies within the frame.
func UnmarshalVariableContainer(data []byte, fixedSizes []int) ([][]byte, error) {
	numFields := len(fixedSizes)
	fixedWidth := 0
	for _, sz := range fixedSizes {
		if sz > 0 {
			fixedWidth += sz
		} else {
			fixedWidth += BytesPerLengthOffset
		}
	}

	fields := make([][]byte, numFields)
	offsets := make([]uint32, 0, numFields)
	offsetFieldIndices := make([]int, 0, numFields)

	pos := 0
	for i, sz := range fixedSizes {
		if sz > 0 {
			end := pos + sz
			if end > len(data) {
				return nil, newDeserializeError(OffsetOutOfBounds, "container", pos)
			}
			fields[i] = append([]byte(nil), data[pos:end]...)
			pos = end
		} else {
			if pos+BytesPerLengthOffset > len(data) {
				return nil, newDeserializeError(OffsetOutOfBounds, "container", pos)
			}
			offset := binary.LittleEndian.Uint32(data[pos : pos+BytesPerLengthOffset])
			offsets = append(offsets, offset)
			offsetFieldIndices = append(offsetFieldIndices, i)
			pos += BytesPerLengthOffset
		}
	}

	if len(offsets) > 0 {
		if int(offsets[0]) != fixedWidth {
			return nil, newDeserializeError(OffsetOutOfBounds, "container", 0)
		}
		for i, off := range offsets {
			if int(off) > len(data) {
				return nil, newDeserializeError(OffsetOutOfBounds, "container", i)
			}
			if i > 0 && off < offsets[i-1] {
				return nil, newDeserializeError(OffsetsNotMonotonic, "container", i)
			}
		}
	}

	for i, idx := range offsetFieldIndices {
		start := int(offsets[i])
		end := len(data)
		if i+1 < len(offsets) {
			end = int(offsets[i+1])
		}
		if start > end {
			return nil, newDeserializeError(OffsetsNotMonotonic, "container", idx)
		}
		fields[idx] = append([]byte(nil), data[start:end]...)
	}
	return fields, nil
}

// UnmarshalListOfVariable decodes a List/Vector of variable-size T. The
// first offset is 4*N where N is the element count; it is validated to be
// a multiple of 4 and consistent with the declared offset table before any
// element is sliced.
func UnmarshalListOfVariable(data []byte, nMax int) ([][]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < BytesPerLengthOffset {
		return nil, newDeserializeError(OffsetOutOfBounds, "list", 0)
	}
	firstOffset := binary.LittleEndian.Uint32(data[0:4])
	if firstOffset%BytesPerLengthOffset != 0 {
		return nil, newDeserializeError(InvalidLength, "list", 0)
	}
	n := int(firstOffset) / BytesPerLengthOffset
	if n <= 0 || n*BytesPerLengthOffset > len(data) {
		return nil, newDeserializeError(OffsetOutOfBounds, "list", 0)
	}
	if nMax > 0 && n > nMax {
		return nil, newDeserializeError(MaxLengthExceeded, "list", 0)
	}

	offsets := make([]uint32, n)
	for i := 0; i < n; i++ {
		pos := i * BytesPerLengthOffset
		offsets[i] = binary.LittleEndian.Uint32(data[pos : pos+BytesPerLengthOffset])
	}
	if int(offsets[0]) != n*BytesPerLengthOffset {
		return nil, newDeserializeError(OffsetOutOfBounds, "list", 0)
	}
	for i, off := range offsets {
		if int(off) > len(data) {
			return nil, newDeserializeError(OffsetOutOfBounds, "list", i)
		}
		if i > 0 && off < offsets[i-1] {
			return nil, newDeserializeError(OffsetsNotMonotonic, "list", i)
		}
	}

	elements := make([][]byte, n)
	for i := 0; i < n; i++ {
		start := int(offsets[i])
		end := len(data)
		if i+1 < n {
			end = int(offsets[i+1])
		}
		if start > end {
			return nil, newDeserializeError(OffsetsNotMonotonic, "list", i)
		}
		elements[i] = append([]byte(nil), data[start:end]...)
	}
	return elements, nil
}

// --- Bitfield decoding ---

// UnmarshalBitvector decodes a bitvector of exactly n bits. Unused bits in
// the final byte (positions >= n) must be zero (§4.2).
func UnmarshalBitvector(data []byte, n int) ([]bool, error) {
	numBytes := (n + 7) / 8
	if len(data) != numBytes {
		return nil, newDeserializeError(InvalidByteLength, "bitvector", len(data))
	}
	if n%8 != 0 {
		lastByte := data[numBytes-1]
		unusedMask := byte(0xFF << uint(n%8))
		if lastByte&unusedMask != 0 {
			return nil, newDeserializeError(InvalidLength, "bitvector", numBytes-1)
		}
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = (data[i/8]>>(uint(i)%8))&1 == 1
	}
	return bits, nil
}

// UnmarshalBitlist decodes a bitlist, locating the sentinel bit as the
// highest set bit of the final byte, and rejects lengths beyond nMax
// (§4.2). Returns the data bits (without the sentinel).
func UnmarshalBitlist(data []byte, nMax int) ([]bool, error) {
	if len(data) == 0 {
		return nil, newDeserializeError(InvalidBitlistTerminator, "bitlist", 0)
	}

	lastByte := data[len(data)-1]
	if lastByte == 0 {
		return nil, newDeserializeError(InvalidBitlistTerminator, "bitlist", len(data)-1)
	}
	sentinelBit := 7
	for (lastByte>>uint(sentinelBit))&1 == 0 {
		sentinelBit--
	}

	n := (len(data)-1)*8 + sentinelBit
	if nMax > 0 && n > nMax {
		return nil, newDeserializeError(MaxLengthExceeded, "bitlist", len(data)-1)
	}
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = (data[i/8]>>(uint(i)%8))&1 == 1
	}
	return bits, nil
}

// --- Option / Union decoding ---

// UnmarshalOptionTag reads the Option[T] presence tag. Returns present=false
// and a nil remainder for the absent case.
func UnmarshalOptionTag(data []byte) (present bool, rest []byte, err error) {
	if len(data) == 0 {
		return false, nil, newDeserializeError(InvalidByteLength, "option", 0)
	}
	switch data[0] {
	case 0:
		if len(data) != 1 {
			return false, nil, newDeserializeError(InvalidByteLength, "option", 1)
		}
		return false, nil, nil
	case 1:
		return true, data[1:], nil
	default:
		return false, nil, newDeserializeError(InvalidBool, "option", 0)
	}
}

// UnmarshalUnionHeader reads the union selector byte, validating it against
// the number of declared variants, and returns the remaining bytes for the
// selected variant to decode.
func UnmarshalUnionHeader(data []byte, numVariants int) (selector byte, rest []byte, err error) {
	if len(data) < 1 {
		return 0, nil, newDeserializeError(InvalidByteLength, "union", 0)
	}
	selector = data[0]
	if int(selector) >= numVariants {
		return 0, nil, newDeserializeError(InvalidSelector, "union", 0)
	}
	return selector, data[1:], nil
}
