// Options for configuring Registry instances.
package core

import "time"

// WithPublisher configures the Registry to announce primitive registrations
// through the given publisher.
func WithPublisher(p TransitionPublisher) Option {
	return func(r *Registry) {
		r.publisher = p
	}
}

// WithClock overrides the registry's time source, mainly so tests and dumps
// can be deterministic.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.clock = now
	}
}
