package state

import (
	"sync"
	"sync/atomic"
)

// Cell is a current-value cell with replay-one subscriptions.
// Set and Subscribe deliver synchronously on the caller's goroutine;
// deliveries are serialized so each observer sees values in Set order.
// Observers must not call Set or Subscribe on the same cell.
type Cell[T any] struct {
	deliver sync.Mutex // serializes notification

	mu        sync.Mutex
	value     T
	observers []*subscription[T]
}

type subscription[T any] struct {
	fn     func(T)
	closed atomic.Bool
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and notifies every current observer.
func (c *Cell[T]) Set(v T) {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	c.value = v
	observers := make([]*subscription[T], len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, sub := range observers {
		if !sub.closed.Load() {
			safeCall(func() { sub.fn(v) })
		}
	}
}

// Subscribe registers fn and immediately calls it with the current value.
// The returned cancel func stops further deliveries; it is safe to call
// more than once and from inside fn.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	sub := &subscription[T]{fn: fn}

	c.deliver.Lock()
	c.mu.Lock()
	c.observers = append(c.observers, sub)
	v := c.value
	c.mu.Unlock()
	safeCall(func() { sub.fn(v) })
	c.deliver.Unlock()

	return func() {
		if sub.closed.Swap(true) {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.observers {
			if s == sub {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				break
			}
		}
	}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
