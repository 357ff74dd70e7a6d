// Package extensibility provides pluggable wrappers around the raw lock
// capability interfaces: logging and transition tracing. Wrappers satisfy the
// same interfaces they wrap, so they stack under any guarded value.
package extensibility

import (
	"log"
	"time"

	"github.com/comalice/unisync/internal/core"
)

// LoggingLock wraps a RawLocker and logs around every operation.
type LoggingLock struct {
	inner core.RawLocker
	name  string
}

// NewLoggingLock creates a LoggingLock wrapping the given raw lock.
func NewLoggingLock(name string, inner core.RawLocker) *LoggingLock {
	return &LoggingLock{inner: inner, name: name}
}

func (l *LoggingLock) TryAcquire() bool {
	ok := l.inner.TryAcquire()
	log.Printf("LOG: try-acquire %q: %v", l.name, ok)
	return ok
}

func (l *LoggingLock) Acquire() {
	log.Printf("LOG: acquiring %q", l.name)
	start := time.Now()
	l.inner.Acquire()
	log.Printf("LOG: acquired %q in %v", l.name, time.Since(start))
}

func (l *LoggingLock) Release() {
	l.inner.Release()
	log.Printf("LOG: released %q", l.name)
}

func (l *LoggingLock) IsLocked() bool {
	return l.inner.IsLocked()
}
