// Package sim provides a deterministic interrupt-interleaving harness for
// exercising unisync primitives under the concurrency model they are built
// for: one logical thread, with interrupt handlers that may interpose between
// any two steps and must run to completion.
//
// A Script is a fixed sequence of named main-flow steps plus interrupt
// handlers pinned to step boundaries. Everything executes on the calling
// goroutine; there is no scheduler, no channels, no timing dependence. Given
// the same script, execution is always identical.
//
// # Example Usage
//
//	var lock primitives.RawLock
//	trace, err := sim.NewScript().
//		Step("acquire", lock.Acquire).
//		Step("release", lock.Release).
//		Interrupt("probe", 0, func() {
//			// fires between acquire and release
//			if lock.TryAcquire() {
//				lock.Release()
//			}
//		}).
//		Run()
//
// # Failure Semantics
//
// A step or handler that violates a primitive's contract panics, exactly as
// it would in production. Run recovers the panic, records it in the trace,
// and stops the script: once the fail-fast path fires there is no meaningful
// way to continue the schedule.
//
// # Use Cases
//
//   - Verifying that handlers touching free primitives are harmless
//   - Verifying that self-conflicting handlers hit the fail-fast path
//   - Reproducing reported interleavings exactly
package sim
