package idmap

import "hash/maphash"

// Hasher defines key hashing and equality. Equal(a, b) must imply that Hash
// writes the same bytes for a and b.
type Hasher[K any] interface {
	Hash(h *maphash.Hash, key K)
	Equal(a, b K) bool
}

// ComparableHasher hashes any comparable key with the built-in == semantics.
type ComparableHasher[K comparable] struct{}

func (ComparableHasher[K]) Hash(h *maphash.Hash, key K) {
	maphash.WriteComparable(h, key)
}

func (ComparableHasher[K]) Equal(a, b K) bool {
	return a == b
}
