// Package tagid provides ID, a generic identifier wrapper whose second type
// parameter is a tag that exists only at compile time.
//
// Two identifiers backed by the same primitive type but declared with
// different tags are distinct Go types, so mixing them is a build error
// rather than a runtime bug:
//
//	type ShaderTag struct{}
//	type TextureTag struct{}
//
//	type ShaderID = tagid.ID[uint32, ShaderTag]
//	type TextureID = tagid.ID[uint32, TextureTag]
//
//	shader := tagid.New[ShaderTag](uint32(42))
//	texture := tagid.New[TextureTag](uint32(42))
//	_ = shader.Equal(texture) // does not compile
//
// The package does not produce identifier values; counters, UUIDs or handles
// from another subsystem are supplied by the caller. Hash-based containers
// that follow ID.Equal are available in the idmap sub-package, using Hasher
// as their hashing strategy.
package tagid
