// Package idmap provides hash-keyed containers whose key equality is
// supplied by a Hasher instead of the built-in == operator.
//
// It exists so that identifiers whose equality ignores part of their state,
// such as tagid.ID, can be used as keys consistently with their Equal
// method. Containers are not safe for concurrent use, same as built-in maps.
package idmap
