// Package ast defines the parse tree the parser builds and the evaluator
// walks: (tag, children) nodes per spec §3, plus the top-level form shape
// the driver consumes.
package ast

import "lispi/types"

// Node is a parse-tree node: a tag (Int, List, or SymRef) plus an ordered,
// possibly-empty sequence of children. Only SymRef-tagged nodes may have
// children; a SymRef with no children is a variable/constant reference, a
// SymRef with children is an application (builtin, special form, or
// user-defined function call).
type Node struct {
	Tag      types.Value
	Children []*Node
}

// Leaf wraps an already-computed value as a childless node.
func Leaf(v types.Value) *Node {
	return &Node{Tag: v}
}

// Ref builds a bare variable/constant reference node.
func Ref(name string) *Node {
	return &Node{Tag: types.NewSymRef(name)}
}

// App builds an application node. Unlike Ref, Children is always non-nil
// even for a zero-argument call (e.g. foo()) — Go collapses a variadic call
// with no extra arguments to a nil slice, which would otherwise make foo()
// indistinguishable from the bare reference foo.
func App(name string, args ...*Node) *Node {
	children := args
	if children == nil {
		children = []*Node{}
	}
	return &Node{Tag: types.NewSymRef(name), Children: children}
}

// IsApplication reports whether n is a SymRef node with at least its
// parentheses present, i.e. whether evaluating it would recurse into
// eval.Eval's application case rather than being a constant leaf or a bare
// variable reference. Used by the fork/join scheduler to decide which
// arguments are fork-eligible.
func (n *Node) IsApplication() bool {
	_, ok := n.Tag.(types.SymRefValue)
	return ok && n.Children != nil
}

// Form is one complete top-level input: a named definition (function or
// constant) or an anonymous expression.
type Form struct {
	Name   string   // "" for an anonymous expression
	Params []string // nil for a constant or an anonymous expression; non-nil (possibly empty) for a function
	Body   *Node
}

// IsDefinition reports whether the form names a symbol to define.
func (f *Form) IsDefinition() bool {
	return f.Name != ""
}

// IsConstant reports whether the form defines a constant: named, but with
// no parameter list at all (spec §3: "When parameter-names is empty and the
// original top-level form contained no parameter list").
func (f *Form) IsConstant() bool {
	return f.Name != "" && f.Params == nil
}
