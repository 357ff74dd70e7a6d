// Package benchmarks provides performance benchmarks for the primitive hot
// paths: acquire/release cycles, completed-gate calls, and materialized
// Force.
package benchmarks

import (
	"testing"

	"github.com/comalice/unisync"
	"github.com/comalice/unisync/internal/core"
	"github.com/comalice/unisync/internal/primitives"
)

func BenchmarkRawLockCycle(b *testing.B) {
	var l primitives.RawLock
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Acquire()
		l.Release()
	}
}

func BenchmarkRawRWLockSharedCycle(b *testing.B) {
	var l primitives.RawRWLock
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.AcquireShared()
		l.ReleaseShared()
	}
}

func BenchmarkRawRWLockExclusiveCycle(b *testing.B) {
	var l primitives.RawRWLock
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.AcquireExclusive()
		l.ReleaseExclusive()
	}
}

func BenchmarkOnceDoCompleted(b *testing.B) {
	var gate primitives.Once
	noop := func() error { return nil }
	if err := gate.Do(noop); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := gate.Do(noop); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCellForceMaterialized(b *testing.B) {
	cell := core.NewCell(func() (int, error) { return 42, nil })
	if _, err := cell.Force(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := cell.Force(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMutexGuardCycle(b *testing.B) {
	m := unisync.NewMutex(0)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := m.Lock()
		*g.Value()++
		g.Unlock()
	}
}

func BenchmarkRegistrySnapshot(b *testing.B) {
	r := GenRegistry(100)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.Snapshot()
	}
}
