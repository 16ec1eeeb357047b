// Package takeable provides a cell holding a value that can be
// temporarily taken out for an operation requiring exclusive ownership
// and then put back. While the value is out, the cell is empty; any
// observation of an empty cell other than Put is a programming error
// and panics.
package takeable

import "sync"

// Cell holds a single value of type T shared between several owners.
type Cell[T any] struct {
	mu      sync.Mutex
	value   T
	present bool
}

// New returns a cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v, present: true}
}

// Take removes the value from the cell and returns it. The cell stays
// empty until Put is called. Panics if the value is already taken.
func (c *Cell[T]) Take() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.present {
		panic("takeable: value already taken")
	}
	c.present = false
	v := c.value
	var zero T
	c.value = zero
	return v
}

// Put reinserts a value into an empty cell. Panics if the cell already
// holds a value.
func (c *Cell[T]) Put(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.present {
		panic("takeable: cell already holds a value")
	}
	c.value = v
	c.present = true
}

// Get returns the held value without removing it. Panics if the value
// is taken.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.present {
		panic("takeable: value is taken")
	}
	return c.value
}

// Borrow calls f with the held value without removing it. Panics if
// the value is taken.
func (c *Cell[T]) Borrow(f func(T)) {
	f(c.Get())
}

// Swap takes the value out, passes it to f, and puts f's result back.
// If f returns an error the returned value is still reinserted, so a
// failed transform never leaves the cell empty.
func (c *Cell[T]) Swap(f func(T) (T, error)) error {
	v := c.Take()
	v, err := f(v)
	c.Put(v)
	return err
}
