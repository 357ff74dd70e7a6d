// Package unisync provides synchronization primitives for single-threaded
// environments: mutual exclusion, read/write locking, one-time initialization,
// and lazily-initialized values, with no OS, no heap requirements in the
// primitive tier, and no hardware atomics.
//
// Exactly one logical thread of execution is the hard precondition for the
// whole package. Interrupt handlers may interleave between operations, but
// must never acquire a primitive held by the code they interrupted; that is a
// programming error and every primitive fails fast (panics) on it instead of
// deadlocking, because no second thread will ever release the conflicting
// hold.
package unisync

// RawLocker is the minimal operation set a raw mutual-exclusion state machine
// exposes. Generic lock wrappers and guard layers should depend on this
// interface rather than a concrete state type.
type RawLocker interface {
	TryAcquire() bool
	Acquire()
	Release()
	IsLocked() bool
}

// RawRWLocker is the minimal operation set a raw read/write state machine
// exposes.
type RawRWLocker interface {
	TryAcquireShared() bool
	AcquireShared()
	ReleaseShared()
	TryAcquireExclusive() bool
	AcquireExclusive()
	ReleaseExclusive()
	ReaderCount() int
	WriterHeld() bool
	IsLocked() bool
}

// OnceGate is the observable surface of a one-time initialization gate.
type OnceGate interface {
	Do(fn func() error) error
	Done() bool
}
