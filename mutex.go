package unisync

import (
	"github.com/comalice/unisync/internal/core"
	"github.com/comalice/unisync/internal/primitives"
)

// Mutex guards a value of type T behind a raw mutual-exclusion lock. The
// value is only reachable through a Guard, so every access happens between a
// successful acquire and its matching release.
type Mutex[T any] struct {
	raw primitives.RawLock
	g   *core.Guarded[T]
}

// NewMutex creates a mutex protecting value.
func NewMutex[T any](value T) *Mutex[T] {
	m := &Mutex[T]{}
	m.g = core.NewGuarded[T](&m.raw, value)
	return m
}

// Lock acquires the mutex and returns a guard. Panics on double lock from
// the same logical thread.
func (m *Mutex[T]) Lock() *Guard[T] {
	return &Guard[T]{inner: m.g.Lock()}
}

// TryLock acquires the mutex if it is free.
func (m *Mutex[T]) TryLock() (*Guard[T], bool) {
	inner, ok := m.g.TryLock()
	if !ok {
		return nil, false
	}
	return &Guard[T]{inner: inner}, true
}

// IsLocked reports whether the mutex is held. Read-only.
func (m *Mutex[T]) IsLocked() bool {
	return m.g.IsLocked()
}

// Guard is a live exclusive hold on a Mutex.
type Guard[T any] struct {
	inner *core.Guard[T]
}

// Value returns the protected value.
func (g *Guard[T]) Value() *T {
	return g.inner.Value()
}

// Unlock releases the mutex.
func (g *Guard[T]) Unlock() {
	g.inner.Unlock()
}
