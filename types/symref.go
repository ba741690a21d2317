package types

// SymRefValue identifies a variable or function name inside an unevaluated
// parse tree. It is tree-internal only: Eval never returns a SymRefValue to
// a caller (see eval.Eval's invariant and the corresponding test in
// eval/eval_test.go).
type SymRefValue struct {
	Name string
}

// NewSymRef constructs a SymRefValue.
func NewSymRef(name string) SymRefValue {
	return SymRefValue{Name: name}
}

// Tag returns the value tag.
func (s SymRefValue) Tag() ValueTag {
	return TagSymRef
}

// String returns the bare identifier.
func (s SymRefValue) String() string {
	return s.Name
}

// Equal reports whether other is a SymRefValue naming the same identifier.
func (s SymRefValue) Equal(other Value) bool {
	o, ok := other.(SymRefValue)
	return ok && s.Name == o.Name
}
