package builtins

import "lispi/types"

func wantInt(v types.Value) (types.IntValue, bool) {
	iv, ok := v.(types.IntValue)
	return iv, ok
}

func typeErr(name string) error {
	return types.NewNamedEvalError(types.TypeMismatch, name)
}

func applyPlus(args []types.Value) (types.Value, error) {
	a, ok1 := wantInt(args[0])
	b, ok2 := wantInt(args[1])
	if !ok1 || !ok2 {
		return nil, typeErr("plus")
	}
	return types.NewInt(a.Val + b.Val), nil
}

func applyMinus(args []types.Value) (types.Value, error) {
	a, ok1 := wantInt(args[0])
	b, ok2 := wantInt(args[1])
	if !ok1 || !ok2 {
		return nil, typeErr("minus")
	}
	return types.NewInt(a.Val - b.Val), nil
}

func applyMult(args []types.Value) (types.Value, error) {
	a, ok1 := wantInt(args[0])
	b, ok2 := wantInt(args[1])
	if !ok1 || !ok2 {
		return nil, typeErr("mult")
	}
	return types.NewInt(a.Val * b.Val), nil
}

func applyDivide(args []types.Value) (types.Value, error) {
	a, ok1 := wantInt(args[0])
	b, ok2 := wantInt(args[1])
	if !ok1 || !ok2 {
		return nil, typeErr("divide")
	}
	if b.Val == 0 {
		return nil, types.NewNamedEvalError(types.DivisionByZero, "divide")
	}
	return types.NewInt(a.Val / b.Val), nil
}

// applyEquals compares integer payloads or, for lists, structural contents
// (types.ListValue.Equal walks the full list), per the resolved Open
// Question in SPEC_FULL.md: equality compares values, never identifier
// pointers. Mismatched types (and anything compared against a SymRefValue,
// which Eval never returns) yield false rather than an error.
func applyEquals(args []types.Value) (types.Value, error) {
	if args[0].Equal(args[1]) {
		return types.NewInt(1), nil
	}
	return types.NewInt(0), nil
}

// lesserThan implements lesser's three-way dispatch: Int compares payloads,
// List compares lengths, and mixed-type operands are never an error — they
// return false, per spec §4.3 ("mixed: Int(0)").
func lesserThan(a, b types.Value) bool {
	if ai, ok := a.(types.IntValue); ok {
		if bi, ok := b.(types.IntValue); ok {
			return ai.Val < bi.Val
		}
		return false
	}
	if al, ok := a.(types.ListValue); ok {
		if bl, ok := b.(types.ListValue); ok {
			return al.Len() < bl.Len()
		}
		return false
	}
	return false
}

func applyLesser(args []types.Value) (types.Value, error) {
	if lesserThan(args[0], args[1]) {
		return types.NewInt(1), nil
	}
	return types.NewInt(0), nil
}

// applyGreater is lesser with its arguments swapped (spec §4.3: "greater
// | lesser(b, a)"), so it shares the same Int/List/mixed dispatch.
func applyGreater(args []types.Value) (types.Value, error) {
	if lesserThan(args[1], args[0]) {
		return types.NewInt(1), nil
	}
	return types.NewInt(0), nil
}

func applyHead(args []types.Value) (types.Value, error) {
	lv, ok := args[0].(types.ListValue)
	if !ok {
		return nil, typeErr("hd")
	}
	if lv.Empty() {
		return nil, types.NewNamedEvalError(types.EmptyList, "hd")
	}
	return lv.Head.Value, nil
}

func applyTail(args []types.Value) (types.Value, error) {
	lv, ok := args[0].(types.ListValue)
	if !ok {
		return nil, typeErr("tl")
	}
	if lv.Empty() {
		return nil, types.NewNamedEvalError(types.EmptyList, "tl")
	}
	return lv.Tail(), nil
}

func applyCons(args []types.Value) (types.Value, error) {
	lv, ok := args[1].(types.ListValue)
	if !ok {
		return nil, typeErr("cons")
	}
	return types.Cons(args[0], lv), nil
}

func applyLength(args []types.Value) (types.Value, error) {
	lv, ok := args[0].(types.ListValue)
	if !ok {
		return nil, typeErr("length")
	}
	return types.NewInt(int64(lv.Len())), nil
}
