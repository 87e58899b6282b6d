package ssz

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"
)

// Digest is the opaque 32-byte hash primitive the Merkleizer is bound to
// (§6). It defaults to SHA-256 via minio/sha256-simd, the accelerated
// implementation used elsewhere in the consensus-client dependency stack
// for the same purpose. Callers needing a different primitive can set
// ssz.Digest before using the package; it is not goroutine-safe to change
// concurrently with in-flight calls.
var Digest = sha256simd.Sum256

// hash combines two 32-byte inputs using the bound digest function.
func hash(a, b [32]byte) [32]byte {
	var combined [64]byte
	copy(combined[:32], a[:])
	copy(combined[32:], b[:])
	return Digest(combined[:])
}

// zeroHash returns a zero-filled 32-byte array.
func zeroHash() [32]byte {
	return [32]byte{}
}

// zeroHashes returns a cache of zero hashes for each level of a Merkle tree.
// zeroHashes[0] = zero chunk, zeroHashes[i] = hash(zeroHashes[i-1], zeroHashes[i-1]).
func zeroHashes(depth int) [][32]byte {
	hashes := make([][32]byte, depth+1)
	for i := 1; i <= depth; i++ {
		hashes[i] = hash(hashes[i-1], hashes[i-1])
	}
	return hashes
}

// nextPowerOfTwo returns the smallest power of 2 >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Pack packs a sequence of SSZ serialized values into 32-byte chunks,
// right-padding the last chunk with zeros if needed (§4.3).
func Pack(serialized []byte) [][32]byte {
	if len(serialized) == 0 {
		return [][32]byte{zeroHash()}
	}
	numChunks := (len(serialized) + BytesPerChunk - 1) / BytesPerChunk
	chunks := make([][32]byte, numChunks)
	for i := 0; i < numChunks; i++ {
		start := i * BytesPerChunk
		end := start + BytesPerChunk
		if end > len(serialized) {
			end = len(serialized)
		}
		copy(chunks[i][:], serialized[start:end])
	}
	return chunks
}

// Merkleize computes the Merkle root of a list of chunks padded to the
// given limit (§4.3). If limit is 0, it uses the next power of two of the
// chunk count.
func Merkleize(chunks [][32]byte, limit int) [32]byte {
	count := len(chunks)
	if limit == 0 || limit < count {
		limit = nextPowerOfTwo(count)
	}
	limit = nextPowerOfTwo(limit)

	if count == 0 {
		chunks = [][32]byte{zeroHash()}
		count = 1
	}

	depth := treeDepth(limit)
	zeros := zeroHashes(depth)

	layer := make([][32]byte, limit)
	copy(layer, chunks)
	for i := count; i < limit; i++ {
		layer[i] = zeros[0]
	}

	for d := 0; d < depth; d++ {
		newSize := len(layer) / 2
		newLayer := make([][32]byte, newSize)
		for i := 0; i < newSize; i++ {
			newLayer[i] = hash(layer[2*i], layer[2*i+1])
		}
		layer = newLayer
	}

	return layer[0]
}

// MixInLength mixes a Merkle root with a length value, used for
// variable-size types (lists, bitlists, byte lists): digest(root ||
// uint256_le(length)).
func MixInLength(root [32]byte, length uint64) [32]byte {
	var lengthChunk [32]byte
	binary.LittleEndian.PutUint64(lengthChunk[:8], length)
	return hash(root, lengthChunk)
}

// MixInSelector mixes a root with a union selector: digest(root ||
// uint256_le(selector)).
func MixInSelector(root [32]byte, selector uint64) [32]byte {
	var selectorChunk [32]byte
	binary.LittleEndian.PutUint64(selectorChunk[:8], selector)
	return hash(root, selectorChunk)
}

// --- Hash tree root functions for basic types ---

// HashTreeRootBool computes the hash tree root of a boolean.
func HashTreeRootBool(v bool) [32]byte {
	var chunk [32]byte
	if v {
		chunk[0] = 1
	}
	return chunk
}

// HashTreeRootUint8 computes the hash tree root of a uint8.
func HashTreeRootUint8(v uint8) [32]byte {
	var chunk [32]byte
	chunk[0] = v
	return chunk
}

// HashTreeRootUint16 computes the hash tree root of a uint16.
func HashTreeRootUint16(v uint16) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint16(chunk[:2], v)
	return chunk
}

// HashTreeRootUint32 computes the hash tree root of a uint32.
func HashTreeRootUint32(v uint32) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint32(chunk[:4], v)
	return chunk
}

// HashTreeRootUint64 computes the hash tree root of a uint64.
func HashTreeRootUint64(v uint64) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint64(chunk[:8], v)
	return chunk
}

// HashTreeRootBytes32 computes the hash tree root of a 32-byte fixed vector.
func HashTreeRootBytes32(b [32]byte) [32]byte {
	return b
}

// --- Hash tree root functions for composite types ---

// HashTreeRootVector computes the hash tree root of a vector of elements,
// each provided as its own 32-byte hash tree root.
func HashTreeRootVector(elementRoots [][32]byte) [32]byte {
	return MerkleizeCached(elementRoots, 0)
}

// HashTreeRootList computes the hash tree root of a list with the given
// max length, mixing in the actual element count.
func HashTreeRootList(elementRoots [][32]byte, maxLen int) [32]byte {
	root := MerkleizeCached(elementRoots, maxLen)
	return MixInLength(root, uint64(len(elementRoots)))
}

// HashTreeRootContainer computes the hash tree root of a container from its
// field roots, with chunk limit equal to the field count.
func HashTreeRootContainer(fieldRoots [][32]byte) [32]byte {
	return MerkleizeCached(fieldRoots, len(fieldRoots))
}

// HashTreeRootByteList computes the hash tree root of a ByteList[N].
func HashTreeRootByteList(data []byte, maxLen int) [32]byte {
	chunks := Pack(data)
	maxChunks := ChunkCountByteList(maxLen)
	root := MerkleizeCached(chunks, maxChunks)
	return MixInLength(root, uint64(len(data)))
}

// HashTreeRootBitvector computes the hash tree root of a Bitvector[N].
func HashTreeRootBitvector(bits []bool) [32]byte {
	packed := MarshalBitvector(bits)
	chunks := Pack(packed)
	return MerkleizeCached(chunks, 0)
}

// HashTreeRootBitlist computes the hash tree root of a Bitlist[N]. Bits are
// packed without the sentinel for Merkleization.
func HashTreeRootBitlist(bits []bool, maxLen int) [32]byte {
	packed := MarshalBitvector(bits)
	chunks := Pack(packed)
	maxChunks := ChunkCountBitlist(maxLen)
	root := MerkleizeCached(chunks, maxChunks)
	return MixInLength(root, uint64(len(bits)))
}

// HashTreeRootBasicVector computes the hash tree root of a vector of basic
// type values, packed and Merkleized with no padding beyond the natural
// chunk count.
func HashTreeRootBasicVector(serialized []byte) [32]byte {
	chunks := Pack(serialized)
	return MerkleizeCached(chunks, 0)
}

// HashTreeRootBasicList computes the hash tree root of a list of basic type
// values: packed into chunks, Merkleized with the byte-derived limit, and
// mixed in with the element count.
func HashTreeRootBasicList(serialized []byte, count int, elemSize int, maxLen int) [32]byte {
	chunks := Pack(serialized)
	maxChunks := (maxLen*elemSize + BytesPerChunk - 1) / BytesPerChunk
	root := MerkleizeCached(chunks, maxChunks)
	return MixInLength(root, uint64(count))
}

// HashTreeRootOption computes the hash tree root of Option[T]: absent mixes
// in the zero root with a 0 tag, present mixes in T's own root with a 1 tag.
func HashTreeRootOption(present bool, valueRoot [32]byte) [32]byte {
	if !present {
		return MixInLength(zeroHash(), 0)
	}
	return MixInLength(valueRoot, 1)
}

// HashTreeRootUnion computes the hash tree root of a union:
// digest(hash_tree_root(value) || uint256_le(selector)).
func HashTreeRootUnion(valueRoot [32]byte, selector byte) [32]byte {
	return MixInSelector(valueRoot, uint64(selector))
}
