package idmap

import (
	"hash/maphash"
	"iter"
)

type entry[K, T any] struct {
	key   K
	value T
}

// Map is a hash map keyed by K using a Hasher. Use New to create one.
type Map[K, T any] struct {
	hasher  Hasher[K]
	seed    maphash.Seed
	buckets map[uint64][]entry[K, T]
	size    int
}

// New creates an empty map that hashes and compares keys with hasher.
func New[K, T any](hasher Hasher[K]) *Map[K, T] {
	return &Map[K, T]{
		hasher:  hasher,
		seed:    maphash.MakeSeed(),
		buckets: make(map[uint64][]entry[K, T]),
	}
}

func (m *Map[K, T]) sum(key K) uint64 {
	var h maphash.Hash
	h.SetSeed(m.seed)
	m.hasher.Hash(&h, key)
	return h.Sum64()
}

func (m *Map[K, T]) find(key K) (uint64, int) {
	sum := m.sum(key)
	for i, e := range m.buckets[sum] {
		if m.hasher.Equal(e.key, key) {
			return sum, i
		}
	}
	return sum, -1
}

// Put stores value under key. When an equal key is already present its value
// is replaced and the originally stored key is kept.
func (m *Map[K, T]) Put(key K, value T) {
	sum, i := m.find(key)
	if i >= 0 {
		m.buckets[sum][i].value = value
		return
	}
	m.buckets[sum] = append(m.buckets[sum], entry[K, T]{key: key, value: value})
	m.size++
}

// Get returns the value stored under key.
func (m *Map[K, T]) Get(key K) (T, bool) {
	sum, i := m.find(key)
	if i < 0 {
		var zero T
		return zero, false
	}
	return m.buckets[sum][i].value, true
}

// Has reports whether key is present.
func (m *Map[K, T]) Has(key K) bool {
	_, i := m.find(key)
	return i >= 0
}

// Delete removes key and reports whether it was present.
func (m *Map[K, T]) Delete(key K) bool {
	sum, i := m.find(key)
	if i < 0 {
		return false
	}
	bucket := m.buckets[sum]
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket[last] = entry[K, T]{}
	if last == 0 {
		delete(m.buckets, sum)
	} else {
		m.buckets[sum] = bucket[:last]
	}
	m.size--
	return true
}

// Len returns the number of keys.
func (m *Map[K, T]) Len() int {
	return m.size
}

// Clear removes all keys.
func (m *Map[K, T]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// All iterates over key/value pairs in unspecified order. The map must not be
// modified during iteration.
func (m *Map[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for _, bucket := range m.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys iterates over keys in unspecified order.
func (m *Map[K, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
