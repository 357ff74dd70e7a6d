package unisync

import "github.com/comalice/unisync/internal/primitives"

// Once is a one-time initialization gate. The zero value is ready to use.
//
// Do runs its initializer exactly once per successful completion. An
// initializer that returns an error or panics poisons the gate; the failure
// propagates and the next Do retries the initializer. A poisoned gate never
// silently reports success. Re-entrant Do from inside the running
// initializer panics.
type Once struct {
	gate primitives.Once
}

// Do runs fn if the gate has not completed, with the semantics above.
func (o *Once) Do(fn func() error) error {
	return o.gate.Do(fn)
}

// Done reports whether the gate completed successfully. Read-only.
func (o *Once) Done() bool {
	return o.gate.Done()
}

// Status returns the gate's lifecycle state as a string, one of
// "uninitialized", "running", "complete", "poisoned".
func (o *Once) Status() string {
	return o.gate.Current().String()
}
