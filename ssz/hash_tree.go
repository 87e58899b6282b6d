// hash_tree.go implements the hash-tree-root driver's supporting
// machinery: a precomputed zero-hash cache, chunk-count helpers per kind,
// a parallel Merkleizer for wide trees, and Merkle multiproof generation.
package ssz

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxCachedZeroHashDepth supports trees of up to 2^64 leaves.
const maxCachedZeroHashDepth = 64

var (
	cachedZeroHashesOnce sync.Once
	cachedZeroHashTable  [maxCachedZeroHashDepth + 1][32]byte
)

func initZeroHashCache() {
	cachedZeroHashesOnce.Do(func() {
		for i := 1; i <= maxCachedZeroHashDepth; i++ {
			cachedZeroHashTable[i] = hash(cachedZeroHashTable[i-1], cachedZeroHashTable[i-1])
		}
	})
}

// ZeroHash returns the cached zero hash at the given tree depth. Depth 0 is
// a 32-byte zero chunk; depth d is the root of a height-d all-zero subtree.
func ZeroHash(depth int) [32]byte {
	initZeroHashCache()
	if depth < 0 || depth > maxCachedZeroHashDepth {
		h := [32]byte{}
		for i := 0; i < depth; i++ {
			h = hash(h, h)
		}
		return h
	}
	return cachedZeroHashTable[depth]
}

// ConcatHash computes digest(a || b) for two 32-byte inputs. Exported so
// callers can build custom Merkle proofs against the same digest function.
func ConcatHash(a, b [32]byte) [32]byte {
	return hash(a, b)
}

func treeDepth(n int) int {
	if n <= 1 {
		return 0
	}
	d := 0
	for (1 << uint(d)) < n {
		d++
	}
	return d
}

// --- Chunk count calculation (§4.3) ---

// ChunkCountBasic returns the number of 32-byte chunks needed to pack n
// values of the given elemByteSize.
func ChunkCountBasic(n, elemByteSize int) int {
	return chunkCountForBytes(n * elemByteSize)
}

// ChunkCountBitvector returns the chunk count for a BitVector[N]: ceil(N/256).
func ChunkCountBitvector(n int) int {
	return (n + 255) / 256
}

// ChunkCountBitlist returns the chunk limit for a BitList[Nmax]: ceil(Nmax/256).
func ChunkCountBitlist(maxLen int) int {
	return (maxLen + 255) / 256
}

// ChunkCountByteVector returns the chunk count for a ByteVector[N].
func ChunkCountByteVector(n int) int {
	return chunkCountForBytes(n)
}

// ChunkCountByteList returns the chunk limit for a ByteList[N].
func ChunkCountByteList(maxLen int) int {
	return chunkCountForBytes(maxLen)
}

// --- Optimized Merkleization with cached zero hashes ---

// MerkleizeCached computes the Merkle root of chunks using the precomputed
// zero-hash cache, avoiding repeated allocation of zero-hash arrays. If
// limit is 0 or smaller than len(chunks), the limit is the next power of
// two of the chunk count.
func MerkleizeCached(chunks [][32]byte, limit int) [32]byte {
	initZeroHashCache()

	count := len(chunks)
	if limit == 0 || limit < count {
		limit = nextPowerOfTwo(count)
	}
	limit = nextPowerOfTwo(limit)

	if count == 0 {
		return ZeroHash(treeDepth(limit))
	}

	depth := treeDepth(limit)

	layer := make([][32]byte, limit)
	copy(layer, chunks)
	for i := count; i < limit; i++ {
		layer[i] = cachedZeroHashTable[0]
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

// parallelMerkleizeThreshold is the leaf count above which
// MerkleizeParallel fans subtree reduction out across goroutines. Below
// it, goroutine setup would cost more than the sequential reduction saves.
const parallelMerkleizeThreshold = 4096

// MerkleizeParallel computes the same root as MerkleizeCached but, for
// wide trees, reduces the two top-level subtrees concurrently via
// errgroup. It exercises the §5 guarantee that independent calls (here,
// independent subtree reductions within one call) may run in parallel
// safely, since each goroutine only reads its own half of the padded
// layer.
func MerkleizeParallel(chunks [][32]byte, limit int) [32]byte {
	initZeroHashCache()

	count := len(chunks)
	if limit == 0 || limit < count {
		limit = nextPowerOfTwo(count)
	}
	limit = nextPowerOfTwo(limit)

	if limit < parallelMerkleizeThreshold {
		return MerkleizeCached(chunks, limit)
	}

	if count == 0 {
		return ZeroHash(treeDepth(limit))
	}

	layer := make([][32]byte, limit)
	copy(layer, chunks)
	for i := count; i < limit; i++ {
		layer[i] = cachedZeroHashTable[0]
	}

	half := limit / 2
	var left, right [32]byte
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		left = reduceLayer(layer[:half])
		return nil
	})
	g.Go(func() error {
		right = reduceLayer(layer[half:])
		return nil
	})
	_ = g.Wait()
	return hash(left, right)
}

// reduceLayer pairwise-reduces a power-of-two layer to a single root.
func reduceLayer(layer [][32]byte) [32]byte {
	for len(layer) > 1 {
		newSize := len(layer) / 2
		newLayer := make([][32]byte, newSize)
		for i := 0; i < newSize; i++ {
			newLayer[i] = hash(layer[2*i], layer[2*i+1])
		}
		layer = newLayer
	}
	return layer[0]
}

// --- Container field root helpers ---

// HashTreeRootAddress computes the hash tree root of a 20-byte address,
// left-aligned in a zero-padded 32-byte chunk.
func HashTreeRootAddress(addr [20]byte) [32]byte {
	var chunk [32]byte
	copy(chunk[:20], addr[:])
	return chunk
}

// HashTreeRootBytes48 computes the hash tree root of a 48-byte fixed
// vector (e.g. a BLS public key): Merkleize(pack(value)).
func HashTreeRootBytes48(b [48]byte) [32]byte {
	chunks := Pack(b[:])
	return MerkleizeCached(chunks, 0)
}

// HashTreeRootBytes96 computes the hash tree root of a 96-byte fixed
// vector (e.g. a BLS signature): Merkleize(pack(value)).
func HashTreeRootBytes96(b [96]byte) [32]byte {
	chunks := Pack(b[:])
	return MerkleizeCached(chunks, 0)
}

// --- Multiproof support ---

// GeneralizedIndex returns the generalized index for a given depth and
// position within a binary Merkle tree. The root has generalized index 1.
func GeneralizedIndex(depth, pos int) uint64 {
	return (1 << uint(depth)) + uint64(pos)
}

// GenerateMultiproof generates a Merkle multiproof for the given leaf
// indices within a set of chunks Merkleized to the given limit. It returns
// the auxiliary (sibling) hashes needed to reconstruct the root, and the
// generalized indices they correspond to.
func GenerateMultiproof(chunks [][32]byte, limit int, indices []int) ([][32]byte, []uint64) {
	initZeroHashCache()

	if limit == 0 {
		limit = nextPowerOfTwo(len(chunks))
	}
	limit = nextPowerOfTwo(limit)
	depth := treeDepth(limit)

	padded := make([][32]byte, limit)
	copy(padded, chunks)

	layers := make([][][32]byte, depth+1)
	layers[0] = padded
	for d := 0; d < depth; d++ {
		sz := len(layers[d]) / 2
		layers[d+1] = make([][32]byte, sz)
		for i := 0; i < sz; i++ {
			layers[d+1][i] = hash(layers[d][2*i], layers[d][2*i+1])
		}
	}

	needed := make(map[uint64]bool)
	provided := make(map[uint64]bool)
	for _, idx := range indices {
		provided[GeneralizedIndex(depth, idx)] = true
	}
	for _, idx := range indices {
		gidx := GeneralizedIndex(depth, idx)
		for gidx > 1 {
			sibling := gidx ^ 1
			if !provided[sibling] {
				needed[sibling] = true
			}
			gidx /= 2
			provided[gidx] = true
		}
	}

	var proofHashes [][32]byte
	var helperIndices []uint64
	for gidx := range needed {
		d := 0
		gi := gidx
		for gi > 1 {
			gi /= 2
			d++
		}
		layerDepth := depth - d
		pos := int(gidx) - (1 << uint(d))
		if layerDepth >= 0 && layerDepth <= depth && pos >= 0 && pos < len(layers[layerDepth]) {
			proofHashes = append(proofHashes, layers[layerDepth][pos])
			helperIndices = append(helperIndices, gidx)
		}
	}

	return proofHashes, helperIndices
}

// SubtreeRoot computes the Merkle root of a contiguous range of chunks,
// useful when only a subset of a larger tree is available.
func SubtreeRoot(chunks [][32]byte) [32]byte {
	n := len(chunks)
	if n == 0 {
		return ZeroHash(0)
	}
	return MerkleizeCached(chunks, nextPowerOfTwo(n))
}
