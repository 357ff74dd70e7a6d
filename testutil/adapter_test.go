package testutil

import (
	"errors"
	"testing"

	"github.com/comalice/unisync/internal/core"
	"github.com/comalice/unisync/internal/primitives"
)

// One suite, both exclusive primitives.
func TestExclusiveLockerSuite(t *testing.T) {
	var rw primitives.RawRWLock
	cases := map[string]ExclusiveLocker{
		"mutex":         &primitives.RawLock{},
		"rwlock-writer": &RWExclusiveAdapter{L: &rw},
	}

	for name, l := range cases {
		t.Run(name, func(t *testing.T) {
			if l.IsLocked() {
				t.Fatal("fresh lock reports held")
			}
			l.Acquire()
			if !l.IsLocked() {
				t.Error("not held after Acquire")
			}
			if l.TryAcquire() {
				t.Error("TryAcquire succeeded on held lock")
			}
			MustPanic(t, l.Acquire)
			l.Release()
			if l.IsLocked() {
				t.Error("held after Release")
			}
		})
	}
}

func TestCountingInit(t *testing.T) {
	var c CountingInit
	boom := errors.New("boom")
	cell := core.NewCell(c.FailN(1, boom, 5))

	if _, err := cell.Force(); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	v, err := cell.Force()
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if *v != 5 || c.Calls != 2 {
		t.Errorf("got %d with %d calls, want 5 with 2 calls", *v, c.Calls)
	}
}
