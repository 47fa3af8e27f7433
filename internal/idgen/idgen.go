package idgen

import "github.com/google/uuid"

// NewFunc returns a new random UUID. Override in tests for determinism.
var NewFunc = uuid.New

// New is a thin wrapper around NewFunc.
func New() uuid.UUID { return NewFunc() }

// Counter hands out sequential values starting at 1, leaving 0 for unset.
type Counter struct {
	next uint32
}

// Next returns the next value.
func (c *Counter) Next() uint32 {
	c.next++
	return c.next
}
