package core

// Guarded pairs a RawLocker with the value it protects. Access is only
// possible through a Guard, so every read or write of the value happens
// between a successful acquire and its matching release.
type Guarded[T any] struct {
	raw   RawLocker
	value T
}

// NewGuarded wraps value behind raw. The caller keeps ownership of raw's
// storage; Guarded only drives its state machine.
func NewGuarded[T any](raw RawLocker, value T) *Guarded[T] {
	return &Guarded[T]{raw: raw, value: value}
}

// Lock acquires the lock and returns a guard. Panics on double acquire, per
// the raw lock's fail-fast contract.
func (g *Guarded[T]) Lock() *Guard[T] {
	g.raw.Acquire()
	return &Guard[T]{g: g}
}

// TryLock acquires the lock if it is free.
func (g *Guarded[T]) TryLock() (*Guard[T], bool) {
	if !g.raw.TryAcquire() {
		return nil, false
	}
	return &Guard[T]{g: g}, true
}

// IsLocked reports whether the lock is held. Read-only.
func (g *Guarded[T]) IsLocked() bool {
	return g.raw.IsLocked()
}

// Guard is a scoped handle on a Guarded value. The value is reachable only
// while the guard is live; Unlock releases the lock. Using a guard after
// Unlock is a caller error the raw lock is not required to detect.
type Guard[T any] struct {
	g *Guarded[T]
}

// Value returns the protected value.
func (gd *Guard[T]) Value() *T {
	return &gd.g.value
}

// Unlock releases the lock held by this guard.
func (gd *Guard[T]) Unlock() {
	gd.g.raw.Release()
}

// RWGuarded pairs a RawRWLocker with the value it protects. Many readers or
// one writer, never both.
type RWGuarded[T any] struct {
	raw   RawRWLocker
	value T
}

// NewRWGuarded wraps value behind raw.
func NewRWGuarded[T any](raw RawRWLocker, value T) *RWGuarded[T] {
	return &RWGuarded[T]{raw: raw, value: value}
}

// Read acquires a shared lock and returns a read guard.
func (g *RWGuarded[T]) Read() *ReadGuard[T] {
	g.raw.AcquireShared()
	return &ReadGuard[T]{g: g}
}

// TryRead acquires a shared lock if no writer holds the lock.
func (g *RWGuarded[T]) TryRead() (*ReadGuard[T], bool) {
	if !g.raw.TryAcquireShared() {
		return nil, false
	}
	return &ReadGuard[T]{g: g}, true
}

// Write acquires the exclusive lock and returns a write guard.
func (g *RWGuarded[T]) Write() *WriteGuard[T] {
	g.raw.AcquireExclusive()
	return &WriteGuard[T]{g: g}
}

// TryWrite acquires the exclusive lock if the lock is completely free.
func (g *RWGuarded[T]) TryWrite() (*WriteGuard[T], bool) {
	if !g.raw.TryAcquireExclusive() {
		return nil, false
	}
	return &WriteGuard[T]{g: g}, true
}

// IsLocked reports whether the lock is held in either mode.
func (g *RWGuarded[T]) IsLocked() bool {
	return g.raw.IsLocked()
}

// ReadGuard is a scoped shared hold. Holders must treat the value as
// read-only; nothing enforces this beyond the contract.
type ReadGuard[T any] struct {
	g *RWGuarded[T]
}

// Value returns the protected value. Do not mutate through a read guard.
func (gd *ReadGuard[T]) Value() *T {
	return &gd.g.value
}

// Unlock drops this guard's shared hold.
func (gd *ReadGuard[T]) Unlock() {
	gd.g.raw.ReleaseShared()
}

// WriteGuard is a scoped exclusive hold.
type WriteGuard[T any] struct {
	g *RWGuarded[T]
}

// Value returns the protected value for reading or writing.
func (gd *WriteGuard[T]) Value() *T {
	return &gd.g.value
}

// Unlock drops the exclusive hold.
func (gd *WriteGuard[T]) Unlock() {
	gd.g.raw.ReleaseExclusive()
}

// Downgrade trades the exclusive hold for a shared one. This is a release
// followed by a re-acquire, not an atomic primitive; the gap is harmless
// because no second thread can interleave, and the shared acquire after an
// exclusive release cannot fail.
func (gd *WriteGuard[T]) Downgrade() *ReadGuard[T] {
	gd.g.raw.ReleaseExclusive()
	gd.g.raw.AcquireShared()
	return &ReadGuard[T]{g: gd.g}
}
