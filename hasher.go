package tagid

import "hash/maphash"

// Hasher hashes and compares IDs of one domain. It satisfies idmap.Hasher,
// so ID[V, Tag] can key an idmap.Map or idmap.Set.
type Hasher[V comparable, Tag any] struct {
	seed maphash.Seed
}

// NewHasher returns a Hasher with a random seed.
func NewHasher[V comparable, Tag any]() Hasher[V, Tag] {
	return Hasher[V, Tag]{seed: maphash.MakeSeed()}
}

// NewHasherWithSeed returns a Hasher that uses seed, e.g. to share hashes
// between hashers within one process.
func NewHasherWithSeed[V comparable, Tag any](seed maphash.Seed) Hasher[V, Tag] {
	return Hasher[V, Tag]{seed: seed}
}

// Hash writes id into h.
func (Hasher[V, Tag]) Hash(h *maphash.Hash, id ID[V, Tag]) {
	id.WriteHash(h)
}

// Equal reports whether a and b hold the same value.
func (Hasher[V, Tag]) Equal(a, b ID[V, Tag]) bool {
	return a.Equal(b)
}

// Sum returns the hash of id under the hasher's seed.
func (h Hasher[V, Tag]) Sum(id ID[V, Tag]) uint64 {
	return id.Hash(h.seed)
}

// Seed returns the seed used by Sum.
func (h Hasher[V, Tag]) Seed() maphash.Seed {
	return h.seed
}
