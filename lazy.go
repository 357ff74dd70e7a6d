package unisync

import "github.com/comalice/unisync/internal/core"

// Lazy is a lazily-initialized value: the initializer runs on first Force
// and at most once per successful completion, after which every Force
// returns the same materialized value.
type Lazy[T any] struct {
	cell *core.Cell[T]
}

// NewLazy creates a lazy value produced by init on first Force.
func NewLazy[T any](init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{cell: core.NewCell[T](init)}
}

// Force materializes and returns the value. A failing initializer
// propagates its error and is retried by the next Force; a partially
// constructed value is never returned.
func (l *Lazy[T]) Force() (*T, error) {
	return l.cell.Force()
}

// MustForce is Force for initializers that cannot fail; it panics on error.
func (l *Lazy[T]) MustForce() *T {
	v, err := l.cell.Force()
	if err != nil {
		panic("unisync: lazy initializer failed: " + err.Error())
	}
	return v
}

// Materialized reports whether the value has been produced. Read-only.
func (l *Lazy[T]) Materialized() bool {
	return l.cell.Materialized()
}
