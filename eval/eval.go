// Package eval implements the recursive tree walker: variable resolution,
// dispatch to special forms, built-ins, and user-defined functions, and
// the fork/join argument-evaluation policy (spec §4.4, §4.5). Grounded on
// the teacher's eval.go dispatch switch over value tags, generalized to
// this language's three-tag (Int/List/SymRef) value model and four-case
// application dispatch order.
package eval

import (
	"time"

	"lispi/ast"
	"lispi/builtins"
	"lispi/interp"
	"lispi/sched"
	"lispi/symtab"
	"lispi/types"
)

// Frame is the set of local bindings introduced by the innermost function
// call (spec §3: non-nested, since the language is first-order and calls
// never capture an enclosing frame).
type Frame map[string]types.Value

var registry = builtins.NewRegistry()

// Eval reduces node to a value under frame, dispatching through ctx's
// symbol table and worker pool.
func Eval(node *ast.Node, frame Frame, ctx *interp.Context) (types.Value, error) {
	switch tag := node.Tag.(type) {
	case types.IntValue:
		return tag, nil
	case types.ListValue:
		return tag, nil
	case types.SymRefValue:
		if node.Children == nil {
			return evalReference(tag.Name, frame, ctx)
		}
		return evalApplication(tag.Name, node.Children, frame, ctx)
	default:
		return nil, types.NewEvalError(types.TypeMismatch)
	}
}

// evalReference resolves a bare SymRef: first the local frame, then a
// stored constant, else UnboundName (spec §4.4 case 2).
func evalReference(name string, frame Frame, ctx *interp.Context) (types.Value, error) {
	if v, ok := frame[name]; ok {
		return v, nil
	}
	if def, ok := ctx.Symbols.Lookup(name); ok && def.IsConstant() {
		return Eval(def.Body, nil, ctx)
	}
	return nil, types.NewNamedEvalError(types.UnboundName, name)
}

// evalApplication dispatches a SymRef-with-children node through the four
// cases of spec §4.4: ite, time, built-in, user function — checked in
// that order.
func evalApplication(name string, children []*ast.Node, frame Frame, ctx *interp.Context) (types.Value, error) {
	ctx.Tracer.Printf("eval: apply %s/%d", name, len(children))

	switch name {
	case "ite":
		return evalIte(children, frame, ctx)
	case "time":
		return evalTime(children, frame, ctx)
	}

	if entry, ok := registry.Lookup(name); ok {
		return evalBuiltinCall(entry, children, frame, ctx)
	}

	if def, ok := ctx.Symbols.Lookup(name); ok && !def.IsConstant() {
		return evalUserCall(def, children, frame, ctx)
	}

	return nil, types.NewNamedEvalError(types.UnboundName, name)
}

// evalIte implements the one conditional special form: the non-taken
// branch is never evaluated (spec §4.3).
func evalIte(children []*ast.Node, frame Frame, ctx *interp.Context) (types.Value, error) {
	if len(children) != 3 {
		return nil, types.NewNamedEvalError(types.ArityError, "ite")
	}
	cond, err := Eval(children[0], frame, ctx)
	if err != nil {
		return nil, err
	}
	iv, ok := cond.(types.IntValue)
	if !ok {
		return nil, types.NewNamedEvalError(types.TypeMismatch, "ite")
	}
	if iv.Val != 0 {
		return Eval(children[1], frame, ctx)
	}
	return Eval(children[2], frame, ctx)
}

// evalTime evaluates its one argument, discards the value, and returns
// elapsed wall time in whole seconds (spec §4.3; truncated-seconds Open
// Question resolved in SPEC_FULL.md).
func evalTime(children []*ast.Node, frame Frame, ctx *interp.Context) (types.Value, error) {
	if len(children) != 1 {
		return nil, types.NewNamedEvalError(types.ArityError, "time")
	}
	start := time.Now()
	if _, err := Eval(children[0], frame, ctx); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	return types.NewInt(int64(elapsed.Seconds())), nil
}

// evalBuiltinCall evaluates every argument, in source order (never
// parallel-eligible: spec §4.5 restricts parallelism to user-function
// applications), then applies the built-in positionally.
func evalBuiltinCall(entry *builtins.Entry, children []*ast.Node, frame Frame, ctx *interp.Context) (types.Value, error) {
	if len(children) != entry.Arity {
		return nil, types.NewNamedEvalError(types.ArityError, entry.Name)
	}
	args := make([]types.Value, len(children))
	for i, child := range children {
		v, err := Eval(child, frame, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return entry.Apply(args)
}

// evalUserCall evaluates the argument list (parallel-eligible per §4.5),
// binds a fresh frame by position, and recursively evaluates the body.
func evalUserCall(def *symtab.Definition, children []*ast.Node, frame Frame, ctx *interp.Context) (types.Value, error) {
	if len(children) != len(def.Params) {
		return nil, types.NewNamedEvalError(types.ArityError, def.Name)
	}

	eligible := func(i int) bool {
		return children[i].IsApplication()
	}
	evalArg := func(i int) (sched.Result, error) {
		return Eval(children[i], frame, ctx)
	}

	rawResults, err := ctx.Pool.Dispatch(len(children), eligible, evalArg)
	if err != nil {
		return nil, err
	}

	callFrame := make(Frame, len(def.Params))
	for i, param := range def.Params {
		callFrame[param] = rawResults[i].(types.Value)
	}
	return Eval(def.Body, callFrame, ctx)
}
