package builtins

import (
	"testing"

	"lispi/types"
)

func apply(t *testing.T, r *Registry, name string, args ...types.Value) (types.Value, error) {
	t.Helper()
	e, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("no such builtin %q", name)
	}
	if len(args) != e.Arity {
		t.Fatalf("%s: wrong arity in test, got %d want %d", name, len(args), e.Arity)
	}
	return e.Apply(args)
}

func TestArithmetic(t *testing.T) {
	r := NewRegistry()

	if v, err := apply(t, r, "plus", types.NewInt(2), types.NewInt(3)); err != nil || v.(types.IntValue).Val != 5 {
		t.Fatalf("plus(2,3) = %v, %v", v, err)
	}
	if v, err := apply(t, r, "minus", types.NewInt(5), types.NewInt(3)); err != nil || v.(types.IntValue).Val != 2 {
		t.Fatalf("minus(5,3) = %v, %v", v, err)
	}
	if v, err := apply(t, r, "mult", types.NewInt(4), types.NewInt(3)); err != nil || v.(types.IntValue).Val != 12 {
		t.Fatalf("mult(4,3) = %v, %v", v, err)
	}
	if v, err := apply(t, r, "divide", types.NewInt(9), types.NewInt(3)); err != nil || v.(types.IntValue).Val != 3 {
		t.Fatalf("divide(9,3) = %v, %v", v, err)
	}
}

func TestDivideByZero(t *testing.T) {
	r := NewRegistry()
	_, err := apply(t, r, "divide", types.NewInt(9), types.NewInt(0))
	ee, ok := err.(*types.EvalError)
	if !ok || ee.Kind != types.DivisionByZero {
		t.Fatalf("expected DivisionByZero, got %v", err)
	}
}

func TestArithmeticTypeMismatch(t *testing.T) {
	r := NewRegistry()
	_, err := apply(t, r, "plus", types.NewInt(1), types.NewEmptyList())
	ee, ok := err.(*types.EvalError)
	if !ok || ee.Kind != types.TypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestEqualsComparesPayloadsNotIdentity(t *testing.T) {
	r := NewRegistry()

	v, err := apply(t, r, "equals", types.NewInt(7), types.NewInt(7))
	if err != nil || v.(types.IntValue).Val != 1 {
		t.Fatalf("equals(7,7) = %v, %v", v, err)
	}

	v, err = apply(t, r, "equals", types.NewInt(7), types.NewInt(8))
	if err != nil || v.(types.IntValue).Val != 0 {
		t.Fatalf("equals(7,8) = %v, %v", v, err)
	}

	l1 := types.Cons(types.NewInt(1), types.Cons(types.NewInt(2), types.NewEmptyList()))
	l2 := types.Cons(types.NewInt(1), types.Cons(types.NewInt(2), types.NewEmptyList()))
	v, err = apply(t, r, "equals", l1, l2)
	if err != nil || v.(types.IntValue).Val != 1 {
		t.Fatalf("equals(list,list) = %v, %v", v, err)
	}
}

func TestLesserGreater(t *testing.T) {
	r := NewRegistry()

	v, _ := apply(t, r, "lesser", types.NewInt(2), types.NewInt(3))
	if v.(types.IntValue).Val != 1 {
		t.Fatalf("lesser(2,3) should be true")
	}
	v, _ = apply(t, r, "greater", types.NewInt(2), types.NewInt(3))
	if v.(types.IntValue).Val != 0 {
		t.Fatalf("greater(2,3) should be false")
	}
}

func TestLesserGreaterOnLists(t *testing.T) {
	r := NewRegistry()

	short := types.Cons(types.NewInt(1), types.NewEmptyList())
	long := types.Cons(types.NewInt(1), types.Cons(types.NewInt(2), types.NewEmptyList()))

	v, err := apply(t, r, "lesser", short, long)
	if err != nil || v.(types.IntValue).Val != 1 {
		t.Fatalf("lesser(short,long) = %v, %v, want 1", v, err)
	}

	v, err = apply(t, r, "greater", short, long)
	if err != nil || v.(types.IntValue).Val != 0 {
		t.Fatalf("greater(short,long) = %v, %v, want 0", v, err)
	}

	v, err = apply(t, r, "greater", long, short)
	if err != nil || v.(types.IntValue).Val != 1 {
		t.Fatalf("greater(long,short) = %v, %v, want 1", v, err)
	}
}

func TestLesserGreaterMixedTypesReturnFalseNotError(t *testing.T) {
	r := NewRegistry()

	v, err := apply(t, r, "lesser", types.NewInt(1), types.NewEmptyList())
	if err != nil || v.(types.IntValue).Val != 0 {
		t.Fatalf("lesser(int,list) = %v, %v, want Int(0) with no error", v, err)
	}

	v, err = apply(t, r, "greater", types.NewEmptyList(), types.NewInt(1))
	if err != nil || v.(types.IntValue).Val != 0 {
		t.Fatalf("greater(list,int) = %v, %v, want Int(0) with no error", v, err)
	}
}

func TestHeadTailConsLength(t *testing.T) {
	r := NewRegistry()

	lst, err := apply(t, r, "cons", types.NewInt(1), types.NewEmptyList())
	if err != nil {
		t.Fatalf("cons error: %v", err)
	}

	hd, err := apply(t, r, "hd", lst)
	if err != nil || hd.(types.IntValue).Val != 1 {
		t.Fatalf("hd(cons(1,[])) = %v, %v", hd, err)
	}

	tl, err := apply(t, r, "tl", lst)
	if err != nil || !tl.(types.ListValue).Empty() {
		t.Fatalf("tl(cons(1,[])) should be empty, got %v, %v", tl, err)
	}

	ln, err := apply(t, r, "length", lst)
	if err != nil || ln.(types.IntValue).Val != 1 {
		t.Fatalf("length(cons(1,[])) = %v, %v", ln, err)
	}
}

func TestHeadTailOnEmptyListFails(t *testing.T) {
	r := NewRegistry()

	_, err := apply(t, r, "hd", types.NewEmptyList())
	ee, ok := err.(*types.EvalError)
	if !ok || ee.Kind != types.EmptyList {
		t.Fatalf("hd([]) should fail with EmptyList, got %v", err)
	}

	_, err = apply(t, r, "tl", types.NewEmptyList())
	ee, ok = err.(*types.EvalError)
	if !ok || ee.Kind != types.EmptyList {
		t.Fatalf("tl([]) should fail with EmptyList, got %v", err)
	}
}

func TestConsRequiresListSecondArgument(t *testing.T) {
	r := NewRegistry()
	_, err := apply(t, r, "cons", types.NewInt(1), types.NewInt(2))
	ee, ok := err.(*types.EvalError)
	if !ok || ee.Kind != types.TypeMismatch {
		t.Fatalf("cons(1,2) should fail with TypeMismatch, got %v", err)
	}
}

func TestRegistryDoesNotContainSpecialForms(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("ite"); ok {
		t.Fatalf("ite must not be in the ordinary builtin registry")
	}
	if _, ok := r.Lookup("time"); ok {
		t.Fatalf("time must not be in the ordinary builtin registry")
	}
}
