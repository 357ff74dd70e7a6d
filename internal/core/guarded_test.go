package core

import (
	"testing"

	"github.com/comalice/unisync/internal/primitives"
)

// A guard scopes exclusive access: while live the lock is held and TryLock
// fails; after Unlock the value is reachable again.
func TestGuardedLockCycle(t *testing.T) {
	var raw primitives.RawLock
	g := NewGuarded(&raw, 10)

	guard := g.Lock()
	if !g.IsLocked() {
		t.Fatal("lock not held while guard live")
	}
	*guard.Value() = 11

	if _, ok := g.TryLock(); ok {
		t.Error("TryLock succeeded while guard live")
	}

	guard.Unlock()
	if g.IsLocked() {
		t.Error("lock still held after Unlock")
	}

	guard2, ok := g.TryLock()
	if !ok {
		t.Fatal("TryLock failed on free lock")
	}
	if *guard2.Value() != 11 {
		t.Errorf("mutation lost: got %d, want 11", *guard2.Value())
	}
	guard2.Unlock()
}

// Two read guards coexist; a write guard requires both gone.
func TestRWGuardedSharedThenExclusive(t *testing.T) {
	var raw primitives.RawRWLock
	g := NewRWGuarded(&raw, "payload")

	r1 := g.Read()
	r2 := g.Read()
	if *r1.Value() != "payload" || *r2.Value() != "payload" {
		t.Fatal("read guards see wrong value")
	}

	if _, ok := g.TryWrite(); ok {
		t.Error("TryWrite succeeded with readers outstanding")
	}

	r1.Unlock()
	r2.Unlock()

	w, ok := g.TryWrite()
	if !ok {
		t.Fatal("TryWrite failed on free lock")
	}
	*w.Value() = "updated"

	if _, ok := g.TryRead(); ok {
		t.Error("TryRead succeeded while writer held")
	}
	w.Unlock()

	r := g.Read()
	if *r.Value() != "updated" {
		t.Errorf("expected %q, got %q", "updated", *r.Value())
	}
	r.Unlock()
}

// Downgrade keeps the value accessible and ends holding a shared lock.
func TestWriteGuardDowngrade(t *testing.T) {
	var raw primitives.RawRWLock
	g := NewRWGuarded(&raw, 1)

	w := g.Write()
	*w.Value() = 2
	r := w.Downgrade()

	if raw.WriterHeld() {
		t.Error("writer still held after downgrade")
	}
	if got := raw.ReaderCount(); got != 1 {
		t.Errorf("expected 1 reader after downgrade, got %d", got)
	}
	if *r.Value() != 2 {
		t.Errorf("downgraded guard lost write: got %d", *r.Value())
	}

	// Another reader may join; a writer may not.
	r2, ok := g.TryRead()
	if !ok {
		t.Error("TryRead failed after downgrade")
	} else {
		r2.Unlock()
	}
	if _, ok := g.TryWrite(); ok {
		t.Error("TryWrite succeeded while downgraded read guard live")
	}

	r.Unlock()
	if raw.IsLocked() {
		t.Error("lock still held after final unlock")
	}
}
