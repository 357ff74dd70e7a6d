package primitives

// RawLock is the raw mutual-exclusion state machine: a single held flag with
// no guard types, no data, and no waiting. The zero value is an unheld lock.
//
// Because exactly one logical thread runs, a failed acquire can never be
// resolved by another thread releasing the lock. Acquire therefore panics on
// conflict instead of spinning; a spin loop here would hang forever.
type RawLock struct {
	held bool
}

// TryAcquire takes the lock if it is free and reports whether it did. It
// never blocks, spins, or retries.
func (l *RawLock) TryAcquire() bool {
	if l.held {
		return false
	}
	l.held = true
	return true
}

// Acquire takes the lock. A conflicting acquire is a double lock from the
// same logical thread and panics: no other thread exists to release it.
func (l *RawLock) Acquire() {
	if !l.TryAcquire() {
		panic("unisync: lock already held, double acquire from the same thread")
	}
}

// Release frees the lock. Only the caller whose Acquire last succeeded may
// release; releasing an unheld lock panics unless checks are compiled out.
func (l *RawLock) Release() {
	if releaseChecks && !l.held {
		panic("unisync: release of unheld lock")
	}
	l.held = false
}

// IsLocked reports whether the lock is currently held. Read-only.
func (l *RawLock) IsLocked() bool {
	return l.held
}
