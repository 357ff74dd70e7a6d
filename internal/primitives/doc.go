// Package primitives provides the foundational, zero-dependency state machines
// for the unisync library: the raw mutual-exclusion lock, the raw read/write
// lock, and the one-time initialization gate.
//
// This package and all `internal/*` packages use ONLY the Go standard library.
// No external dependencies are permitted in the primitive tier to achieve:
// - Minimal binary size
// - Zero vendor bloat
// - Deterministic builds
// - Usability in freestanding / single-threaded targets
//
// Core invariants:
// - No hardware atomics: plain field mutation under the single-logical-thread
//   precondition (interrupt handlers may interleave, real parallelism may not)
// - No blocking, parking, or spinning: a conflicting acquire can never be
//   resolved by waiting, so it fails fast instead
// - Every contract violation panics immediately rather than deadlocking
//
// The single-logical-thread precondition is a hard usage requirement of the
// whole library, not an implementation detail. An interrupt handler may use a
// primitive that is free at the point of interruption, but must never touch
// one held by the code it interrupted.
package primitives
