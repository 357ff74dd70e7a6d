package primitives

// Status is the lifecycle state of a Once gate.
type Status uint8

const (
	// Uninitialized means the initializer has never run.
	Uninitialized Status = iota
	// Running means the initializer is executing right now.
	Running
	// Complete means the initializer finished normally; it will never run again.
	Complete
	// Poisoned means the initializer failed or panicked partway. A later Do
	// re-attempts it.
	Poisoned
)

func (s Status) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Complete:
		return "complete"
	case Poisoned:
		return "poisoned"
	default:
		return "unknown"
	}
}

// Once is the one-time initialization gate. The zero value is an unused gate.
//
// Progression is monotonic forward: Uninitialized -> Running -> Complete or
// Poisoned. Complete is terminal. Poisoned is not: the retry policy here is
// that a later Do re-enters Running and re-runs the initializer, since no
// competing thread could have left shared state inconsistent in a way a
// retry could not repair. A poisoned gate never silently reports success.
type Once struct {
	status Status
}

// Do runs fn exactly once per successful completion. If the gate is Complete
// it returns nil without invoking fn. If fn returns an error or panics, the
// gate is poisoned and the failure propagates; the next Do retries fn.
//
// A re-entrant Do from inside the running initializer panics. It can never
// make progress, so it fails fast instead of deadlocking.
func (o *Once) Do(fn func() error) error {
	switch o.status {
	case Complete:
		return nil
	case Running:
		panic("unisync: re-entrant Once.Do from its own initializer")
	}

	o.status = Running
	defer func() {
		// Reached on panic out of fn; the deferred status write is the only
		// transition an unwinding initializer performs.
		if o.status == Running {
			o.status = Poisoned
		}
	}()

	if err := fn(); err != nil {
		o.status = Poisoned
		return err
	}
	o.status = Complete
	return nil
}

// Done reports whether the gate has completed successfully. Read-only.
func (o *Once) Done() bool {
	return o.status == Complete
}

// Status returns the current lifecycle state. Read-only.
func (o *Once) Current() Status {
	return o.status
}
