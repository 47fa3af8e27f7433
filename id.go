package tagid

import (
	"fmt"
	"hash/maphash"
)

// ID is an identifier of type V that belongs to the domain named by Tag.
//
// Tag is never instantiated and occupies no space. ID[V, A] and ID[V, B] are
// unrelated types: neither converts to the other. Tags are expected to be
// empty structs. The zero value is an unset identifier holding the zero of
// V. IDs are immutable once built and safe to copy.
//
// Equal compares values only. The built-in == operator (and therefore a
// built-in map keyed by ID) also compares the unset/set state, so an unset
// ID and New(zero) are == unequal but Equal. Use idmap when keys must
// follow Equal.
type ID[V comparable, Tag any] struct {
	_     [0]Tag
	value V
	valid bool
}

// New returns a set identifier holding v. Tag is listed first so that only
// the tag needs to be spelled out: New[ShaderTag](uint32(7)).
func New[Tag any, V comparable](v V) ID[V, Tag] {
	return ID[V, Tag]{value: v, valid: true}
}

// Unset returns the zero identifier, same as ID[V, Tag]{}.
func Unset[V comparable, Tag any]() ID[V, Tag] {
	return ID[V, Tag]{}
}

// Value returns the underlying identifier value.
func (i ID[V, Tag]) Value() V {
	return i.value
}

// Valid reports whether i was built with New. It plays no part in Equal or
// hashing.
func (i ID[V, Tag]) Valid() bool {
	return i.valid
}

// Equal reports whether i and other hold the same value.
func (i ID[V, Tag]) Equal(other ID[V, Tag]) bool {
	return i.value == other.value
}

// Hash returns a hash of the value for the given seed. IDs that are Equal
// hash the same under the same seed.
func (i ID[V, Tag]) Hash(seed maphash.Seed) uint64 {
	return maphash.Comparable(seed, i.value)
}

// WriteHash adds the value to h.
func (i ID[V, Tag]) WriteHash(h *maphash.Hash) {
	maphash.WriteComparable(h, i.value)
}

func (i ID[V, Tag]) String() string {
	return fmt.Sprint(i.value)
}
