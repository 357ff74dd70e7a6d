package sim

import (
	"fmt"
	"sort"
)

// Step is one unit of main-flow work.
type Step struct {
	Name string
	Fn   func()
}

// Handler is an interrupt handler pinned to a step boundary: it fires after
// the main step with index After completes. Handlers pinned to the same
// boundary fire in registration order.
type Handler struct {
	Name  string
	After int
	Fn    func()
}

// Script is a deterministic schedule of steps and handlers.
type Script struct {
	steps    []Step
	handlers []Handler
}

// TraceEntry records one executed step or handler.
type TraceEntry struct {
	Name      string
	Interrupt bool
	Panicked  bool
	Message   string
}

// Trace is the execution record of a script run.
type Trace struct {
	Entries []TraceEntry
}

// Names returns the executed entry names in order, handlers prefixed with
// "intr:". Convenience for assertions.
func (t *Trace) Names() []string {
	out := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		if e.Interrupt {
			out = append(out, "intr:"+e.Name)
		} else {
			out = append(out, e.Name)
		}
	}
	return out
}

// NewScript creates an empty script.
func NewScript() *Script {
	return &Script{}
}

// Step appends a main-flow step. Returns the script for chaining.
func (s *Script) Step(name string, fn func()) *Script {
	s.steps = append(s.steps, Step{Name: name, Fn: fn})
	return s
}

// Interrupt registers a handler firing after main step index after. An index
// of -1 fires before the first step. Returns the script for chaining.
func (s *Script) Interrupt(name string, after int, fn func()) *Script {
	s.handlers = append(s.handlers, Handler{Name: name, After: after, Fn: fn})
	return s
}

// Run executes the script on the calling goroutine. The returned trace lists
// everything that ran. If a step or handler panicked, the trace's last entry
// records it and the error describes it; later work does not run.
func (s *Script) Run() (Trace, error) {
	// Stable order: boundary first, then registration sequence.
	handlers := make([]Handler, len(s.handlers))
	copy(handlers, s.handlers)
	sort.SliceStable(handlers, func(i, j int) bool {
		return handlers[i].After < handlers[j].After
	})

	var trace Trace
	next := 0 // next unfired handler

	fire := func(name string, interrupt bool, fn func()) error {
		entry := TraceEntry{Name: name, Interrupt: interrupt}
		err := func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					entry.Panicked = true
					entry.Message = fmt.Sprint(r)
					err = fmt.Errorf("%s %q panicked: %v", kindWord(interrupt), name, r)
				}
			}()
			fn()
			return nil
		}()
		trace.Entries = append(trace.Entries, entry)
		return err
	}

	runBoundary := func(boundary int) error {
		for next < len(handlers) && handlers[next].After <= boundary {
			h := handlers[next]
			next++
			if err := fire(h.Name, true, h.Fn); err != nil {
				return err
			}
		}
		return nil
	}

	if err := runBoundary(-1); err != nil {
		return trace, err
	}
	for i, step := range s.steps {
		if err := fire(step.Name, false, step.Fn); err != nil {
			return trace, err
		}
		if err := runBoundary(i); err != nil {
			return trace, err
		}
	}
	return trace, nil
}

func kindWord(interrupt bool) string {
	if interrupt {
		return "interrupt"
	}
	return "step"
}
