package unisync

import (
	"github.com/comalice/unisync/internal/core"
	"github.com/comalice/unisync/internal/primitives"
)

// RWMutex guards a value of type T behind a raw read/write lock: many
// readers or one writer, never both.
type RWMutex[T any] struct {
	raw primitives.RawRWLock
	g   *core.RWGuarded[T]
}

// NewRWMutex creates a read/write mutex protecting value.
func NewRWMutex[T any](value T) *RWMutex[T] {
	m := &RWMutex[T]{}
	m.g = core.NewRWGuarded[T](&m.raw, value)
	return m
}

// Read acquires a shared hold. Panics if a writer on this same logical
// thread already holds the lock.
func (m *RWMutex[T]) Read() *RGuard[T] {
	return &RGuard[T]{inner: m.g.Read()}
}

// TryRead acquires a shared hold if no writer holds the lock.
func (m *RWMutex[T]) TryRead() (*RGuard[T], bool) {
	inner, ok := m.g.TryRead()
	if !ok {
		return nil, false
	}
	return &RGuard[T]{inner: inner}, true
}

// Write acquires the exclusive hold. Panics on any re-entrant conflict.
func (m *RWMutex[T]) Write() *WGuard[T] {
	return &WGuard[T]{inner: m.g.Write()}
}

// TryWrite acquires the exclusive hold if the lock is completely free.
func (m *RWMutex[T]) TryWrite() (*WGuard[T], bool) {
	inner, ok := m.g.TryWrite()
	if !ok {
		return nil, false
	}
	return &WGuard[T]{inner: inner}, true
}

// IsLocked reports whether the lock is held in either mode.
func (m *RWMutex[T]) IsLocked() bool {
	return m.g.IsLocked()
}

// ReaderCount returns the number of outstanding shared holds.
func (m *RWMutex[T]) ReaderCount() int {
	return m.raw.ReaderCount()
}

// RGuard is a live shared hold. Do not mutate the value through it.
type RGuard[T any] struct {
	inner *core.ReadGuard[T]
}

// Value returns the protected value for reading.
func (g *RGuard[T]) Value() *T {
	return g.inner.Value()
}

// RUnlock drops this shared hold.
func (g *RGuard[T]) RUnlock() {
	g.inner.Unlock()
}

// WGuard is a live exclusive hold.
type WGuard[T any] struct {
	inner *core.WriteGuard[T]
}

// Value returns the protected value for reading or writing.
func (g *WGuard[T]) Value() *T {
	return g.inner.Value()
}

// Unlock drops the exclusive hold.
func (g *WGuard[T]) Unlock() {
	g.inner.Unlock()
}

// Downgrade trades the exclusive hold for a shared one. Release followed by
// re-acquire, not an atomic step; safe because no second thread exists to
// interleave.
func (g *WGuard[T]) Downgrade() *RGuard[T] {
	return &RGuard[T]{inner: g.inner.Downgrade()}
}
