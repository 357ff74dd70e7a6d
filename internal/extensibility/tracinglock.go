package extensibility

import (
	"context"
	"fmt"
	"time"

	"github.com/comalice/unisync/internal/core"
)

// TracingLock wraps a RawLocker and publishes a TransitionEvent for every
// successful state change. Failed try-acquires publish nothing; they change
// no state.
type TracingLock struct {
	inner core.RawLocker
	name  string
	pub   core.TransitionPublisher
	clock func() time.Time
}

// NewTracingLock creates a TracingLock publishing through pub.
func NewTracingLock(name string, inner core.RawLocker, pub core.TransitionPublisher) *TracingLock {
	return &TracingLock{inner: inner, name: name, pub: pub, clock: time.Now}
}

// WithClock overrides the event time source. Returns the lock for chaining.
func (l *TracingLock) WithClock(now func() time.Time) *TracingLock {
	l.clock = now
	return l
}

func (l *TracingLock) emit(from, to string) {
	_ = l.pub.Publish(context.Background(), core.TransitionEvent{
		Primitive: l.name,
		Kind:      core.KindMutex,
		From:      from,
		To:        to,
		Timestamp: l.clock(),
	})
}

func (l *TracingLock) TryAcquire() bool {
	if !l.inner.TryAcquire() {
		return false
	}
	l.emit("free", "held")
	return true
}

func (l *TracingLock) Acquire() {
	l.inner.Acquire()
	l.emit("free", "held")
}

func (l *TracingLock) Release() {
	l.inner.Release()
	l.emit("held", "free")
}

func (l *TracingLock) IsLocked() bool {
	return l.inner.IsLocked()
}

// TracingRWLock is the read/write counterpart of TracingLock.
type TracingRWLock struct {
	inner core.RawRWLocker
	name  string
	pub   core.TransitionPublisher
	clock func() time.Time
}

// NewTracingRWLock creates a TracingRWLock publishing through pub.
func NewTracingRWLock(name string, inner core.RawRWLocker, pub core.TransitionPublisher) *TracingRWLock {
	return &TracingRWLock{inner: inner, name: name, pub: pub, clock: time.Now}
}

// WithClock overrides the event time source. Returns the lock for chaining.
func (l *TracingRWLock) WithClock(now func() time.Time) *TracingRWLock {
	l.clock = now
	return l
}

// stateName names the current state of the wrapped lock for event labels.
func (l *TracingRWLock) stateName() string {
	switch {
	case l.inner.WriterHeld():
		return "exclusive"
	case l.inner.ReaderCount() > 0:
		return fmt.Sprintf("shared(%d)", l.inner.ReaderCount())
	default:
		return "free"
	}
}

func (l *TracingRWLock) emit(from string) {
	_ = l.pub.Publish(context.Background(), core.TransitionEvent{
		Primitive: l.name,
		Kind:      core.KindRWLock,
		From:      from,
		To:        l.stateName(),
		Timestamp: l.clock(),
	})
}

func (l *TracingRWLock) TryAcquireShared() bool {
	from := l.stateName()
	if !l.inner.TryAcquireShared() {
		return false
	}
	l.emit(from)
	return true
}

func (l *TracingRWLock) AcquireShared() {
	from := l.stateName()
	l.inner.AcquireShared()
	l.emit(from)
}

func (l *TracingRWLock) ReleaseShared() {
	from := l.stateName()
	l.inner.ReleaseShared()
	l.emit(from)
}

func (l *TracingRWLock) TryAcquireExclusive() bool {
	from := l.stateName()
	if !l.inner.TryAcquireExclusive() {
		return false
	}
	l.emit(from)
	return true
}

func (l *TracingRWLock) AcquireExclusive() {
	from := l.stateName()
	l.inner.AcquireExclusive()
	l.emit(from)
}

func (l *TracingRWLock) ReleaseExclusive() {
	from := l.stateName()
	l.inner.ReleaseExclusive()
	l.emit(from)
}

func (l *TracingRWLock) ReaderCount() int {
	return l.inner.ReaderCount()
}

func (l *TracingRWLock) WriterHeld() bool {
	return l.inner.WriterHeld()
}

func (l *TracingRWLock) IsLocked() bool {
	return l.inner.IsLocked()
}
