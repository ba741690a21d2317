// Package symtab implements the process-wide symbol table: reserved
// built-in/special-form names and user definitions (spec §3, §4.2).
package symtab

import (
	"sync"

	"lispi/ast"
	"lispi/types"
)

// Builtins is the fixed set of 12 built-in operator names (spec §4.3).
var Builtins = []string{
	"plus", "minus", "mult", "divide",
	"equals", "lesser", "greater",
	"hd", "tl", "cons", "length",
	"time",
}

// SpecialForms are application heads the evaluator recognizes directly,
// ahead of builtin and user-function lookup (spec §4.3, §4.4). "time" is a
// built-in name (above) that is ALSO evaluated with special-form policy;
// "ite" has no other identity.
var SpecialForms = []string{"ite"}

// Definition is a stored symbol: a constant (Params == nil, Body already
// reduced to a single value leaf) or a function (Params non-nil, Body
// stored verbatim and evaluated on each call).
type Definition struct {
	Name   string
	Params []string
	Body   *ast.Node
}

// IsConstant reports whether d was defined with no parameter list.
func (d *Definition) IsConstant() bool {
	return d.Params == nil
}

// Table is the global name -> definition mapping. Entries are permanent
// for the session once defined. Mutation only ever happens on the driver
// thread between top-level forms (spec §5); the mutex guards against
// misuse rather than against a genuine concurrent-writer scenario, since
// no writer runs while workers are evaluating (see sched.Pool).
type Table struct {
	mu       sync.RWMutex
	defs     map[string]*Definition
	reserved map[string]bool
}

// New builds a Table with the 12 built-ins and "ite" reserved.
func New() *Table {
	t := &Table{
		defs:     make(map[string]*Definition),
		reserved: make(map[string]bool),
	}
	for _, name := range Builtins {
		t.reserved[name] = true
	}
	for _, name := range SpecialForms {
		t.reserved[name] = true
	}
	return t
}

// IsReserved reports whether name is a built-in or special-form name.
func (t *Table) IsReserved(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.reserved[name]
}

// Define installs a definition, failing with Redefinition if name is
// reserved or already defined. The table is left untouched on failure.
func (t *Table) Define(def *Definition) *types.EvalError {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.reserved[def.Name] {
		return types.NewNamedEvalError(types.Redefinition, def.Name)
	}
	if _, exists := t.defs[def.Name]; exists {
		return types.NewNamedEvalError(types.Redefinition, def.Name)
	}
	t.defs[def.Name] = def
	return nil
}

// Lookup returns the stored definition for name, if any.
func (t *Table) Lookup(name string) (*Definition, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	def, ok := t.defs[name]
	return def, ok
}
