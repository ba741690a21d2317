// Package interp bundles everything the evaluator needs into one explicit,
// passable context: no hidden singletons (spec Design Notes), grounded on
// how the teacher's TaskContext threads a database, scheduler, and player
// reference through every verb call instead of relying on package-level
// state.
package interp

import (
	"lispi/sched"
	"lispi/symtab"
	"lispi/trace"
)

// Context is constructed once per process and passed explicitly to every
// evaluation entry point.
type Context struct {
	Symbols *symtab.Table
	Pool    *sched.Pool
	Tracer  *trace.Tracer
}

// New builds a Context with a fresh symbol table and the given worker cap.
// tracer may be nil, in which case tracing calls are no-ops.
func New(maxWorkers int, tracer *trace.Tracer) *Context {
	return &Context{
		Symbols: symtab.New(),
		Pool:    sched.New(maxWorkers),
		Tracer:  tracer,
	}
}
