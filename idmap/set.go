package idmap

import "iter"

// Set is a hash set keyed by K using a Hasher. Use NewSet to create one.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates an empty set that hashes and compares keys with hasher.
func NewSet[K any](hasher Hasher[K]) *Set[K] {
	return &Set[K]{m: New[K, struct{}](hasher)}
}

// Add inserts key and reports whether it was not already present.
func (s *Set[K]) Add(key K) bool {
	if s.m.Has(key) {
		return false
	}
	s.m.Put(key, struct{}{})
	return true
}

// Has reports whether key is present.
func (s *Set[K]) Has(key K) bool {
	return s.m.Has(key)
}

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.m.Delete(key)
}

// Len returns the number of keys.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// All iterates over keys in unspecified order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}
