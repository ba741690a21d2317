package types

import "testing"

func TestEvalErrorMessage(t *testing.T) {
	tests := []struct {
		err  *EvalError
		want string
	}{
		{NewEvalError(DivisionByZero), "DivisionByZero: division by zero"},
		{NewNamedEvalError(UnboundName, "foo"), "UnboundName: name is not bound (foo)"},
		{NewNamedEvalError(Redefinition, "plus"), "Redefinition: name is reserved or already defined (plus)"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorKindStringCovers(t *testing.T) {
	kinds := []ErrorKind{TypeMismatch, ArityError, UnboundName, Redefinition, EmptyList, DivisionByZero, ParseError}
	for _, k := range kinds {
		if k.String() == "UnknownError" {
			t.Errorf("ErrorKind %d missing a String() case", int(k))
		}
		if k.Message() == "unknown error" {
			t.Errorf("ErrorKind %d missing a Message() case", int(k))
		}
	}
}
