package core

import (
	"context"
	"errors"
	"time"

	"github.com/comalice/unisync/internal/primitives"
)

var (
	ErrNotFound = errors.New("primitive not found")
)

// Registry manages named process-wide primitives with construct-on-first-use
// semantics: looking a name up under a kind creates the primitive if it does
// not exist yet. This is the library's answer to lazily-initialized statics —
// one registry per program (or per subsystem), primitives materialized the
// first time anything names them.
//
// Registry itself follows the single-logical-thread precondition of the
// primitives it manages; it takes no internal locks.
type Registry struct {
	id        string
	mutexes   map[string]*primitives.RawLock
	rwlocks   map[string]*primitives.RawRWLock
	onces     map[string]*primitives.Once
	order     []string // registration order, for stable snapshots
	kinds     map[string]Kind
	publisher TransitionPublisher
	clock     func() time.Time
}

// Option applies configuration to a Registry via functional options.
type Option func(*Registry)

// NewRegistry creates an empty registry identified by id.
func NewRegistry(id string, opts ...Option) *Registry {
	r := &Registry{
		id:      id,
		mutexes: make(map[string]*primitives.RawLock),
		rwlocks: make(map[string]*primitives.RawRWLock),
		onces:   make(map[string]*primitives.Once),
		kinds:   make(map[string]Kind),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mutex returns the named mutual-exclusion lock, creating it on first use.
// Panics if the name is already registered under a different kind.
func (r *Registry) Mutex(name string) *primitives.RawLock {
	if l, ok := r.mutexes[name]; ok {
		return l
	}
	r.claim(name, KindMutex)
	l := &primitives.RawLock{}
	r.mutexes[name] = l
	return l
}

// RWLock returns the named read/write lock, creating it on first use.
func (r *Registry) RWLock(name string) *primitives.RawRWLock {
	if l, ok := r.rwlocks[name]; ok {
		return l
	}
	r.claim(name, KindRWLock)
	l := &primitives.RawRWLock{}
	r.rwlocks[name] = l
	return l
}

// Once returns the named initialization gate, creating it on first use.
func (r *Registry) Once(name string) *primitives.Once {
	if o, ok := r.onces[name]; ok {
		return o
	}
	r.claim(name, KindOnce)
	o := &primitives.Once{}
	r.onces[name] = o
	return o
}

// claim records a new name under kind. Registering one name as two kinds is
// a programmer error with no recovery, so it fails fast.
func (r *Registry) claim(name string, kind Kind) {
	if existing, ok := r.kinds[name]; ok {
		panic("unisync: name " + name + " already registered as " + string(existing))
	}
	r.kinds[name] = kind
	r.order = append(r.order, name)
	if r.publisher != nil {
		_ = r.publisher.Publish(context.Background(), TransitionEvent{
			Primitive: name,
			Kind:      kind,
			From:      "absent",
			To:        "free",
			Timestamp: r.clock(),
		})
	}
}

// Names returns all registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup returns the observed state of a registered primitive.
func (r *Registry) Lookup(name string) (PrimitiveState, error) {
	kind, ok := r.kinds[name]
	if !ok {
		return PrimitiveState{}, ErrNotFound
	}
	return r.observe(name, kind), nil
}

// Snapshot returns the serializable state of every registered primitive, in
// registration order.
func (r *Registry) Snapshot() Snapshot {
	snap := Snapshot{
		SetID:     r.id,
		Timestamp: r.clock(),
	}
	for _, name := range r.order {
		snap.Primitives = append(snap.Primitives, r.observe(name, r.kinds[name]))
	}
	return snap
}

func (r *Registry) observe(name string, kind Kind) PrimitiveState {
	st := PrimitiveState{Name: name, Kind: kind}
	switch kind {
	case KindMutex:
		st.Held = r.mutexes[name].IsLocked()
	case KindRWLock:
		l := r.rwlocks[name]
		st.Readers = l.ReaderCount()
		st.WriterHeld = l.WriterHeld()
	case KindOnce:
		st.Status = r.onces[name].Current().String()
	}
	return st
}
