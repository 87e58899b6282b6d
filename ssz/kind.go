package ssz

// Kind identifies which of the closed set of SSZ kinds a type belongs to.
type Kind int

const (
	KindUint Kind = iota
	KindBool
	KindVector
	KindBitVector
	KindList
	KindBitList
	KindContainer
	KindOption
	KindUnion
)

// isBasicKind reports whether k is one of the SSZ "basic" types (uintN,
// bool) whose vectors/lists are packed into chunks rather than merkleized
// from per-element roots (§4.3).
func isBasicKind(k Kind) bool {
	return k == KindUint || k == KindBool
}

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindBool:
		return "bool"
	case KindVector:
		return "vector"
	case KindBitVector:
		return "bitvector"
	case KindList:
		return "list"
	case KindBitList:
		return "bitlist"
	case KindContainer:
		return "container"
	case KindOption:
		return "option"
	case KindUnion:
		return "union"
	default:
		return "unknown"
	}
}

// TypeInfo records the essential attributes the encoder, decoder, and
// Merkleizer all need to agree on: whether a type is fixed- or
// variable-size, its fixed-part width, and its Merkleization chunk limit.
//
// FixedSize is only meaningful when Variable is false (standalone values)
// or when the type is embedded as a composite field (the offset table is
// built from the fixed widths of fixed-size fields). ChunkLimit is the
// chunk bound used to size the Merkle tree regardless of actual content
// length (§4.3); it is stored unpadded, and Merkleization rounds it up to
// the next power of two.
type TypeInfo struct {
	Kind       Kind
	Variable   bool
	FixedSize  int
	ChunkLimit int
}

// IsVariable reports whether t describes a variable-size type.
func (t TypeInfo) IsVariable() bool { return t.Variable }

// VectorTypeInfo classifies Vector[T,N] from the element's TypeInfo.
// A vector of variable-size elements is itself variable-size; a vector of
// fixed-size elements is fixed-size with width N*elem.FixedSize.
func VectorTypeInfo(elem TypeInfo, n int) TypeInfo {
	if elem.Variable {
		return TypeInfo{Kind: KindVector, Variable: true, ChunkLimit: n}
	}
	totalBytes := n * elem.FixedSize
	return TypeInfo{
		Kind:       KindVector,
		Variable:   false,
		FixedSize:  totalBytes,
		ChunkLimit: chunkCountForBytes(totalBytes),
	}
}

// ListTypeInfo classifies List[T,Nmax]. Lists are always variable-size
// regardless of the element's own fixedness, because their length is part
// of the value, not the type.
func ListTypeInfo(elem TypeInfo, nMax int) TypeInfo {
	if elem.Variable {
		return TypeInfo{Kind: KindList, Variable: true, ChunkLimit: nMax}
	}
	return TypeInfo{
		Kind:       KindList,
		Variable:   true,
		ChunkLimit: chunkCountForBytes(nMax * elem.FixedSize),
	}
}

// BitVectorTypeInfo classifies BitVector[N]: fixed-size, ceil(N/8) bytes.
func BitVectorTypeInfo(n int) TypeInfo {
	return TypeInfo{
		Kind:       KindBitVector,
		Variable:   false,
		FixedSize:  (n + 7) / 8,
		ChunkLimit: ChunkCountBitvector(n),
	}
}

// BitListTypeInfo classifies BitList[Nmax]: always variable-size.
func BitListTypeInfo(nMax int) TypeInfo {
	return TypeInfo{
		Kind:       KindBitList,
		Variable:   true,
		ChunkLimit: ChunkCountBitlist(nMax),
	}
}

// ContainerTypeInfo classifies Container{f1:T1,...} from its field
// TypeInfos. The container is variable iff any field is variable; the
// fixed-part width sums fixed field widths plus one 4-byte offset slot
// per variable field. The chunk limit is the field count (§4.3).
func ContainerTypeInfo(fields []TypeInfo) TypeInfo {
	variable := false
	fixedWidth := 0
	for _, f := range fields {
		if f.Variable {
			variable = true
			fixedWidth += BytesPerLengthOffset
		} else {
			fixedWidth += f.FixedSize
		}
	}
	info := TypeInfo{Kind: KindContainer, Variable: variable, ChunkLimit: len(fields)}
	if !variable {
		info.FixedSize = fixedWidth
	}
	return info
}

// OptionTypeInfo classifies Option[T]: always variable-size (a 1-byte tag
// plus, when present, T's encoding).
func OptionTypeInfo() TypeInfo {
	return TypeInfo{Kind: KindOption, Variable: true}
}

// UnionTypeInfo classifies Union{T0,...,Tk}: always variable-size (a
// 1-byte selector plus the selected variant's encoding).
func UnionTypeInfo() TypeInfo {
	return TypeInfo{Kind: KindUnion, Variable: true}
}

// UintTypeInfo classifies uintN: fixed-size, N/8 bytes.
func UintTypeInfo(bits int) TypeInfo {
	width := bits / 8
	return TypeInfo{Kind: KindUint, Variable: false, FixedSize: width, ChunkLimit: chunkCountForBytes(width)}
}

// BoolTypeInfo classifies bool: fixed-size, 1 byte.
func BoolTypeInfo() TypeInfo {
	return TypeInfo{Kind: KindBool, Variable: false, FixedSize: 1, ChunkLimit: 1}
}

func chunkCountForBytes(n int) int {
	if n == 0 {
		return 1
	}
	return (n + BytesPerChunk - 1) / BytesPerChunk
}
