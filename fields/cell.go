package fields

import "sync"

// Cell is a mutable value shared between goroutines. It replaces writes to
// package-level variables after initialization.
type Cell[T any] struct {
	mu sync.Mutex
	v  T
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.v
}

func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.v = v
}

// Swap stores v and returns the previous value.
func (c *Cell[T]) Swap(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.v
	c.v = v
	return old
}
