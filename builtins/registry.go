// Package builtins implements the eleven ordinary built-in operators (spec
// §4.3). "ite" and "time" are special forms with non-uniform argument
// evaluation and are handled directly by the evaluator instead of through
// this registry (spec §4.4 case order).
package builtins

import (
	"lispi/types"
)

// Func applies a built-in to its already-evaluated, positionally-ordered
// arguments.
type Func func(args []types.Value) (types.Value, error)

// Entry pairs a built-in's fixed arity with its implementation, grounded
// on the teacher's name -> BuiltinFunc registry entries, narrowed to a
// fixed arity since none of these eleven operators are variadic.
type Entry struct {
	Name  string
	Arity int
	Apply Func
}

// Registry is the fixed table of ordinary built-in operators.
type Registry struct {
	entries map[string]*Entry
}

// NewRegistry builds the registry with all eleven operators installed.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]*Entry)}
	r.register("plus", 2, applyPlus)
	r.register("minus", 2, applyMinus)
	r.register("mult", 2, applyMult)
	r.register("divide", 2, applyDivide)
	r.register("equals", 2, applyEquals)
	r.register("lesser", 2, applyLesser)
	r.register("greater", 2, applyGreater)
	r.register("hd", 1, applyHead)
	r.register("tl", 1, applyTail)
	r.register("cons", 2, applyCons)
	r.register("length", 1, applyLength)
	return r
}

func (r *Registry) register(name string, arity int, fn Func) {
	r.entries[name] = &Entry{Name: name, Arity: arity, Apply: fn}
}

// Lookup returns the entry for name, if it names one of the eleven
// ordinary built-ins.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}
