// options.go provides the codec's configuration surface: digest function
// override and root-cache toggling. There is no network or file config
// here; the codec has no I/O surface of its own.
package ssz

// DigestFunc is the opaque 32-byte hash primitive signature the
// Merkleizer is bound to (spec.md §6).
type DigestFunc func([]byte) [32]byte

// Options configures a Merkleizer instance.
type Options struct {
	digest    DigestFunc
	cache     *MerkleCache
	useParal  bool
}

// MerkleizerOption mutates an Options value.
type MerkleizerOption func(*Options)

// WithDigest overrides the digest function used by MerkleizeChunks. The
// default is SHA-256 via minio/sha256-simd (see Digest in merkle.go).
func WithDigest(fn DigestFunc) MerkleizerOption {
	return func(o *Options) { o.digest = fn }
}

// WithRootCache enables the root cache with the given entry capacity.
// Passing capacity <= 0 disables it (the default).
func WithRootCache(capacity int) MerkleizerOption {
	return func(o *Options) { o.cache = NewMerkleCache(capacity) }
}

// WithParallelMerkleization enables MerkleizeParallel for wide trees
// instead of the sequential MerkleizeCached.
func WithParallelMerkleization() MerkleizerOption {
	return func(o *Options) { o.useParal = true }
}

// NewOptions builds an Options from the given functional options. A nil
// digest means "use the package-level Digest function"; WithDigest sets
// a non-nil override.
func NewOptions(opts ...MerkleizerOption) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Merkleizer computes hash tree roots with an optional root cache
// (compare MerkleCache's own constructor), and Merkleizes raw chunks with
// a configured digest function. HashTreeRoot delegates to the value's own
// HashTreeRoot, which uses the package-level Digest; the digest and
// parallel options apply to MerkleizeChunks only.
type Merkleizer struct {
	opts *Options
}

// NewMerkleizer builds a Merkleizer from the given options.
func NewMerkleizer(opts ...MerkleizerOption) *Merkleizer {
	return &Merkleizer{opts: NewOptions(opts...)}
}

// HashTreeRoot computes the hash tree root of a value implementing
// HashRoot, consulting and populating the configured root cache when the
// value also exposes a stable cache key via CacheKeyer.
func (m *Merkleizer) HashTreeRoot(v HashRoot) ([32]byte, error) {
	if m.opts.cache != nil {
		if ck, ok := v.(CacheKeyer); ok {
			key := ck.CacheKey()
			if root, hit := m.opts.cache.GetHash(key); hit {
				return root, nil
			}
			root, err := v.HashTreeRoot()
			if err != nil {
				return [32]byte{}, err
			}
			m.opts.cache.PutHash(key, root)
			return root, nil
		}
	}
	return v.HashTreeRoot()
}

// CacheKeyer is implemented by types whose hash tree root computation can
// be memoized by the root cache, keyed on a caller-determined digest of
// their current content (e.g. the encoded form's own hash).
type CacheKeyer interface {
	CacheKey() [32]byte
}

// MerkleizeChunks merkleizes chunks against limit. When the Merkleizer
// uses the default digest, it delegates to the shared zero-hash cache
// (MerkleizeParallel or MerkleizeCached, per WithParallelMerkleization);
// a custom digest (WithDigest) cannot share that cache, since its zero
// hashes differ, so it falls back to computing them inline.
func (m *Merkleizer) MerkleizeChunks(chunks [][32]byte, limit int) [32]byte {
	if isDefaultDigest(m.opts.digest) {
		if m.opts.useParal {
			return MerkleizeParallel(chunks, limit)
		}
		return MerkleizeCached(chunks, limit)
	}
	return m.merkleizeWithDigest(chunks, limit)
}

func (m *Merkleizer) merkleizeWithDigest(chunks [][32]byte, limit int) [32]byte {
	count := len(chunks)
	if limit == 0 || limit < count {
		limit = nextPowerOfTwo(count)
	}
	limit = nextPowerOfTwo(limit)

	combine := func(a, b [32]byte) [32]byte {
		var buf [64]byte
		copy(buf[:32], a[:])
		copy(buf[32:], b[:])
		return m.opts.digest(buf[:])
	}

	if count == 0 {
		var z [32]byte
		for d := 0; d < treeDepth(limit); d++ {
			z = combine(z, z)
		}
		return z
	}

	layer := make([][32]byte, limit)
	copy(layer, chunks)

	depth := treeDepth(limit)
	for d := 0; d < depth; d++ {
		newSize := len(layer) / 2
		newLayer := make([][32]byte, newSize)
		for i := 0; i < newSize; i++ {
			newLayer[i] = combine(layer[2*i], layer[2*i+1])
		}
		layer = newLayer
	}
	return layer[0]
}

func isDefaultDigest(fn DigestFunc) bool {
	return fn == nil
}
