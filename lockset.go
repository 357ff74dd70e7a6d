package unisync

import "github.com/comalice/unisync/internal/core"

// LockSet is a named collection of process-wide primitives with
// construct-on-first-use semantics: naming a primitive creates it the first
// time and returns the same instance afterwards. Declare one set per program
// or subsystem instead of scattering package-level lock variables.
type LockSet struct {
	reg *core.Registry
}

// NewLockSet creates an empty set identified by id.
func NewLockSet(id string) *LockSet {
	return &LockSet{reg: core.NewRegistry(id)}
}

// Mutex returns the named mutual-exclusion lock, creating it on first use.
// Panics if the name is already registered under a different kind.
func (s *LockSet) Mutex(name string) RawLocker {
	return s.reg.Mutex(name)
}

// RWLock returns the named read/write lock, creating it on first use.
func (s *LockSet) RWLock(name string) RawRWLocker {
	return s.reg.RWLock(name)
}

// Once returns the named initialization gate, creating it on first use.
func (s *LockSet) Once(name string) OnceGate {
	return s.reg.Once(name)
}

// Names returns all registered names in registration order.
func (s *LockSet) Names() []string {
	return s.reg.Names()
}
