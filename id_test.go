package tagid

import (
	"fmt"
	"hash/maphash"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type shaderTag struct{}
type textureTag struct{}
type runTag struct{}

type shaderID = ID[uint32, shaderTag]
type textureID = ID[uint32, textureTag]
type runID = ID[uuid.UUID, runTag]

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
	}{
		{name: "zero", value: 0},
		{name: "one", value: 1},
		{name: "answer", value: 42},
		{name: "max", value: math.MaxUint32},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := New[shaderTag](tc.value)
			assert.Equal(t, tc.value, id.Value())
			assert.True(t, id.Valid())
		})
	}
}

func TestUnset(t *testing.T) {
	var id shaderID
	assert.Equal(t, uint32(0), id.Value())
	assert.False(t, id.Valid())
	assert.Equal(t, id, Unset[uint32, shaderTag]())

	var run runID
	assert.Equal(t, uuid.Nil, run.Value())
	assert.False(t, run.Valid())
}

func TestID_Equal(t *testing.T) {
	values := []uint32{0, 1, 2, 42, math.MaxUint32}
	for _, v1 := range values {
		for _, v2 := range values {
			t.Run(fmt.Sprintf("%d_%d", v1, v2), func(t *testing.T) {
				assert.Equal(t, v1 == v2, New[shaderTag](v1).Equal(New[shaderTag](v2)))
			})
		}
	}
}

func TestID_Equal_SameValue(t *testing.T) {
	a := New[shaderTag](uint32(42))
	b := New[shaderTag](uint32(42))
	seed := maphash.MakeSeed()

	assert.True(t, a.Equal(b))
	assert.True(t, a == b)
	assert.Equal(t, a.Hash(seed), b.Hash(seed))
}

// An unset ID and an ID built from the zero value are Equal: the validity
// flag is not part of equality. This is current behavior, not necessarily a
// desirable one.
func TestID_Equal_UnsetMatchesZero(t *testing.T) {
	var unset shaderID
	zero := New[shaderTag](uint32(0))
	seed := maphash.MakeSeed()

	assert.True(t, unset.Equal(zero))
	assert.True(t, zero.Equal(unset))
	assert.Equal(t, unset.Hash(seed), zero.Hash(seed))
	assert.NotEqual(t, unset.Valid(), zero.Valid())
	// built-in == compares the flag as well
	assert.False(t, unset == zero)
}

func TestID_Hash(t *testing.T) {
	seed := maphash.MakeSeed()
	values := []uint32{0, 7, 42, 1 << 20}
	for _, v := range values {
		a := New[shaderTag](v)
		b := New[shaderTag](v)
		assert.Equal(t, a.Hash(seed), b.Hash(seed), "value %d", v)
		assert.Equal(t, maphash.Comparable(seed, v), a.Hash(seed), "value %d", v)

		var h maphash.Hash
		h.SetSeed(seed)
		a.WriteHash(&h)
		assert.Equal(t, a.Hash(seed), h.Sum64(), "value %d", v)
	}
}

func TestID_UUID(t *testing.T) {
	raw := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	a := New[runTag](raw)
	b := New[runTag](uuid.MustParse(raw.String()))
	other := New[runTag](uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"))
	seed := maphash.MakeSeed()

	assert.Equal(t, raw, a.Value())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(other))
	assert.Equal(t, a.Hash(seed), b.Hash(seed))
	assert.Equal(t, raw.String(), a.String())
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "42", New[shaderTag](uint32(42)).String())
	assert.Equal(t, "0", shaderID{}.String())
	assert.Equal(t, "brick", New[textureTag]("brick").String())
	assert.Equal(t, "7", fmt.Sprintf("%v", New[textureTag](uint32(7))))
}

func TestID_BuiltinMapKey(t *testing.T) {
	byID := map[textureID]string{}
	byID[New[textureTag](uint32(1))] = "brick"
	byID[New[textureTag](uint32(1))] = "stone"
	byID[textureID{}] = "unset"
	byID[New[textureTag](uint32(0))] = "zero"

	assert.Len(t, byID, 3)
	assert.Equal(t, "stone", byID[New[textureTag](uint32(1))])
}
