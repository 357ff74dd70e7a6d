package primitives

import "testing"

// checkExclusion fails the test if both sides of the lock are held at once.
func checkExclusion(t *testing.T, l *RawRWLock) {
	t.Helper()
	if l.WriterHeld() && l.ReaderCount() > 0 {
		t.Fatalf("writer held with %d readers outstanding", l.ReaderCount())
	}
	if l.ReaderCount() < 0 {
		t.Fatalf("reader count went negative: %d", l.ReaderCount())
	}
}

// Readers block the writer until every shared hold is released.
func TestRWLockReadersExcludeWriter(t *testing.T) {
	var l RawRWLock

	l.AcquireShared()
	l.AcquireShared()
	checkExclusion(t, &l)
	if got := l.ReaderCount(); got != 2 {
		t.Fatalf("expected 2 readers, got %d", got)
	}

	if l.TryAcquireExclusive() {
		t.Error("exclusive acquire succeeded with readers outstanding")
	}
	checkExclusion(t, &l)

	l.ReleaseShared()
	if l.TryAcquireExclusive() {
		t.Error("exclusive acquire succeeded with one reader outstanding")
	}

	l.ReleaseShared()
	if got := l.ReaderCount(); got != 0 {
		t.Fatalf("expected 0 readers, got %d", got)
	}
	if !l.TryAcquireExclusive() {
		t.Error("exclusive acquire failed on free lock")
	}
	checkExclusion(t, &l)
	l.ReleaseExclusive()
}

// A held writer blocks both sharing and a second writer.
func TestRWLockWriterExcludesAll(t *testing.T) {
	var l RawRWLock

	l.AcquireExclusive()
	if !l.WriterHeld() || !l.IsLocked() {
		t.Fatal("writer not reported held after exclusive acquire")
	}

	if l.TryAcquireShared() {
		t.Error("shared acquire succeeded while writer held")
	}
	if l.TryAcquireExclusive() {
		t.Error("second exclusive acquire succeeded")
	}
	checkExclusion(t, &l)

	l.ReleaseExclusive()
	if l.IsLocked() {
		t.Error("lock still reports held after exclusive release")
	}
	if !l.TryAcquireShared() {
		t.Error("shared acquire failed on free lock")
	}
	l.ReleaseShared()
}

// Exhaustive short interleavings never observe writer && readers>0.
func TestRWLockInterleavings(t *testing.T) {
	type op func(*RawRWLock) bool
	tryShared := func(l *RawRWLock) bool { return l.TryAcquireShared() }
	tryExcl := func(l *RawRWLock) bool { return l.TryAcquireExclusive() }

	ops := []op{tryShared, tryExcl}
	for _, first := range ops {
		for _, second := range ops {
			for _, third := range ops {
				var l RawRWLock
				for _, o := range []op{first, second, third} {
					o(&l)
					checkExclusion(t, &l)
				}
			}
		}
	}
}

func TestRWLockFailFastPanics(t *testing.T) {
	var l RawRWLock

	l.AcquireExclusive()
	mustPanic(t, l.AcquireShared)
	mustPanic(t, l.AcquireExclusive)
	l.ReleaseExclusive()

	l.AcquireShared()
	mustPanic(t, l.AcquireExclusive)
	l.ReleaseShared()
}

func TestRWLockReleaseUnderflowPanics(t *testing.T) {
	if !releaseChecks {
		t.Skip("release checking compiled out")
	}
	var l RawRWLock
	mustPanic(t, l.ReleaseShared)
	mustPanic(t, l.ReleaseExclusive)

	l.AcquireShared()
	l.ReleaseShared()
	mustPanic(t, l.ReleaseShared)
}
