package core

import (
	"github.com/comalice/unisync/internal/primitives"
)

// Cell is a lazily-initialized value: a Once gate paired with a slot holding
// either the pending initializer or the materialized value, never both. No
// heap allocation happens beyond the Cell itself; the value lives inline.
//
// The transition from initializer to value is driven solely by the embedded
// gate reaching Complete, so the exactly-once and poison-retry semantics are
// inherited from primitives.Once.
type Cell[T any] struct {
	gate  primitives.Once
	init  func() (T, error)
	value T
}

// NewCell creates a cell that will produce its value from init on first
// Force. init must not be nil.
func NewCell[T any](init func() (T, error)) *Cell[T] {
	if init == nil {
		panic("unisync: nil Cell initializer")
	}
	return &Cell[T]{init: init}
}

// Force materializes the value, running the initializer at most once per
// successful completion, and returns a pointer to it. The pointer stays valid
// for the life of the cell; the value is never mutated after construction.
//
// If the initializer fails, the error propagates and the cell stays
// unmaterialized; a later Force retries.
func (c *Cell[T]) Force() (*T, error) {
	err := c.gate.Do(func() error {
		v, err := c.init()
		if err != nil {
			return err
		}
		c.value = v
		c.init = nil // slot flips from pending initializer to value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c.value, nil
}

// Materialized reports whether the value has been produced. Read-only.
func (c *Cell[T]) Materialized() bool {
	return c.gate.Done()
}

// Status exposes the embedded gate's lifecycle state, for diagnostics.
func (c *Cell[T]) Status() primitives.Status {
	return c.gate.Current()
}
