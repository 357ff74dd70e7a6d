// Package core provides the generic wrapper tier of the unisync library:
// capability interfaces over the raw primitives, guarded values, the lazy
// cell, and the named registry for process-wide primitives.
// Dependencies: internal/primitives.
// Stdlib-only implementation.
// Pluggable components defined here as forward declarations for the
// production tier.
package core

import (
	"context"
	"time"
)

// RawLocker is the capability interface for mutual exclusion. Any state
// machine exposing this operation set can back a guarded value or a generic
// lock wrapper; internal/primitives.RawLock is the canonical implementation.
type RawLocker interface {
	TryAcquire() bool
	Acquire()
	Release()
	IsLocked() bool
}

// RawRWLocker is the capability interface for read/write locking.
// internal/primitives.RawRWLock is the canonical implementation.
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

// TransitionEvent records one observable primitive state change.
type TransitionEvent struct {
	Primitive string    `json:"primitive" yaml:"primitive"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	From      string    `json:"from" yaml:"from"`
	To        string    `json:"to" yaml:"to"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// TransitionPublisher forwards transition events to an external sink.
type TransitionPublisher interface {
	Publish(ctx context.Context, event TransitionEvent) error
	Close() error
}

// Dumper persists registry snapshots for post-mortem inspection.
type Dumper interface {
	Dump(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context, setID string) (Snapshot, error)
}

// Visualizer renders a snapshot of the primitive state machines.
type Visualizer interface {
	ExportDOT(snapshot Snapshot) string
	ExportJSON(snapshot Snapshot) ([]byte, error)
}
