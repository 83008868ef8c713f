// Package store holds the client-side state containers: server-sourced
// collections of domain records plus the loading flag and last error the
// views render from. Every store issues one network round trip per
// operation and reconciles the in-memory collection with the result.
package store

import "sync"

// collection is the state every content store carries. Stores embed an
// instantiation of it, which promotes the read accessors.
type collection[T any] struct {
	mu      sync.Mutex
	items   []T
	current *T
	loading bool
	err     error
}

// Items returns a copy of the collection in server order.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.items == nil {
		return nil
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Current returns a copy of the single-item slot, nil when absent.
func (c *collection[T]) Current() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	item := *c.current
	return &item
}

func (c *collection[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last recorded failure, nil when the store is clean.
func (c *collection[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// run brackets op with the loading flag so no exit path can leave it stuck
// on. Mutating operations clear the previous error first; a failing op has
// its error recorded either way. If two ops overlap, the collection ends up
// reflecting whichever response resolved last.
func (c *collection[T]) run(clearErr bool, op func() error) error {
	c.mu.Lock()
	c.loading = true
	if clearErr {
		c.err = nil
	}
	c.mu.Unlock()

	err := op()

	c.mu.Lock()
	c.loading = false
	if err != nil {
		c.err = err
	}
	c.mu.Unlock()
	return err
}

func (c *collection[T]) replaceAll(items []T) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

func (c *collection[T]) setCurrent(item *T) {
	c.mu.Lock()
	c.current = item
	c.mu.Unlock()
}

func (c *collection[T]) prepend(item T) {
	c.mu.Lock()
	c.items = append([]T{item}, c.items...)
	c.mu.Unlock()
}

// replaceWhere swaps the first matching entry for item. No match, no change.
func (c *collection[T]) replaceWhere(match func(T) bool, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if match(c.items[i]) {
			c.items[i] = item
			return
		}
	}
}

// removeWhere drops matching entries, preserving the relative order of the
// rest. The current slot is cleared too when it matches.
func (c *collection[T]) removeWhere(match func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	c.items = kept
	if c.current != nil && match(*c.current) {
		c.current = nil
	}
}

// reset empties the collection and forgets the last error.
func (c *collection[T]) reset() {
	c.mu.Lock()
	c.items = nil
	c.err = nil
	c.mu.Unlock()
}
