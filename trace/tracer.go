// Package trace implements the optional execution trace sink enabled by
// the "-d" CLI flag, grounded on the teacher's trace.Tracer (a
// mutex-guarded io.Writer reached from multiple goroutines), simplified
// here to the one event this evaluator emits: "eval: apply <name>/<arity>"
// for every application (special form, built-in, or user function).
package trace

import (
	"fmt"
	"io"
	"sync"
)

// Tracer serializes writes to a debug sink from possibly-concurrent
// evaluator goroutines (argument workers may trace concurrently with the
// dispatching goroutine).
type Tracer struct {
	mu  sync.Mutex
	out io.Writer
}

// New builds a Tracer writing to out. A nil out disables emission.
func New(out io.Writer) *Tracer {
	return &Tracer{out: out}
}

// Enabled reports whether t will actually emit anything. A nil *Tracer is
// valid and always disabled, so callers never need a nil check before
// calling Printf.
func (t *Tracer) Enabled() bool {
	return t != nil && t.out != nil
}

// Printf writes one trace line if tracing is enabled; otherwise it is a
// no-op, safe to call on a nil *Tracer.
func (t *Tracer) Printf(format string, args ...interface{}) {
	if !t.Enabled() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format+"\n", args...)
}
