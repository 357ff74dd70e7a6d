package primitives

// RawRWLock is the raw read/write state machine: a reader count and a writer
// flag. The zero value is a free lock.
//
// Invariant: writer and readers > 0 are never true at the same time, and
// readers never goes negative. Upgrade and downgrade are deliberately not
// primitives; release then re-acquire, accepting the gap (harmless when no
// true parallelism exists).
//
// There is no writer preference: shared acquires never queue behind a pending
// exclusive request, because nothing ever queues at all.
type RawRWLock struct {
	readers int
	writer  bool
}

// TryAcquireShared takes a read lock if no writer holds the lock and reports
// whether it did.
func (l *RawRWLock) TryAcquireShared() bool {
	if l.writer {
		return false
	}
	l.readers++
	return true
}

// AcquireShared takes a read lock. Panics if a writer holds the lock: the
// conflict is re-entrant by construction and will never clear.
func (l *RawRWLock) AcquireShared() {
	if !l.TryAcquireShared() {
		panic("unisync: read lock while write lock held by the same thread")
	}
}

// ReleaseShared drops one read lock. Underflow panics unless checks are
// compiled out.
func (l *RawRWLock) ReleaseShared() {
	if releaseChecks && l.readers == 0 {
		panic("unisync: release of unheld read lock")
	}
	l.readers--
}

// TryAcquireExclusive takes the write lock if there are no readers and no
// writer, and reports whether it did.
func (l *RawRWLock) TryAcquireExclusive() bool {
	if l.readers > 0 || l.writer {
		return false
	}
	l.writer = true
	return true
}

// AcquireExclusive takes the write lock. Panics on conflict, same policy as
// AcquireShared.
func (l *RawRWLock) AcquireExclusive() {
	if !l.TryAcquireExclusive() {
		panic("unisync: write lock while lock held by the same thread")
	}
}

// ReleaseExclusive drops the write lock. Releasing when no writer holds the
// lock panics unless checks are compiled out.
func (l *RawRWLock) ReleaseExclusive() {
	if releaseChecks && !l.writer {
		panic("unisync: release of unheld write lock")
	}
	l.writer = false
}

// ReaderCount returns the number of outstanding read locks. Read-only.
func (l *RawRWLock) ReaderCount() int {
	return l.readers
}

// WriterHeld reports whether the write lock is held. Read-only.
func (l *RawRWLock) WriterHeld() bool {
	return l.writer
}

// IsLocked reports whether the lock is held in either mode.
func (l *RawRWLock) IsLocked() bool {
	return l.writer || l.readers > 0
}
