// Package testutil provides shared helpers for unisync tests.
package testutil

import (
	"testing"

	"github.com/comalice/unisync/internal/core"
)

// ExclusiveLocker is the common exclusive-lock surface of the mutex and the
// write side of the read/write lock. This allows running the same test suite
// on both primitives.
type ExclusiveLocker interface {
	TryAcquire() bool
	Acquire()
	Release()
	IsLocked() bool
}

// RWExclusiveAdapter presents the exclusive side of a read/write lock as an
// ExclusiveLocker.
type RWExclusiveAdapter struct {
	L core.RawRWLocker
}

func (a *RWExclusiveAdapter) TryAcquire() bool {
	return a.L.TryAcquireExclusive()
}

func (a *RWExclusiveAdapter) Acquire() {
	a.L.AcquireExclusive()
}

func (a *RWExclusiveAdapter) Release() {
	a.L.ReleaseExclusive()
}

func (a *RWExclusiveAdapter) IsLocked() bool {
	return a.L.IsLocked()
}

// CountingInit builds initializers that record how often they ran, for
// asserting exactly-once semantics.
type CountingInit struct {
	Calls int
}

// Int returns an initializer producing v and counting its invocations.
func (c *CountingInit) Int(v int) func() (int, error) {
	return func() (int, error) {
		c.Calls++
		return v, nil
	}
}

// FailN returns an initializer that fails with err for the first n calls and
// then produces v.
func (c *CountingInit) FailN(n int, err error, v int) func() (int, error) {
	return func() (int, error) {
		c.Calls++
		if c.Calls <= n {
			return 0, err
		}
		return v, nil
	}
}

// MustPanic fails the test if fn does not panic.
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic, got none")
		}
	}()
	fn()
}
