package ast

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{IntegerLiteralKind, "integer_literal"},
		{DeclRefExprKind, "decl_ref"},
		{TupleExprKind, "tuple_expr"},
		{ApplyExprKind, "apply_expr"},
		{SequenceExprKind, "sequence_expr"},
		{BraceExprKind, "brace_expr"},
		{ClosureExprKind, "closure_expr"},
		{BinaryExprKind, "binary_expr"},
		{Kind(99), "unknown"},
		{Kind(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindRegistryIsClosed(t *testing.T) {
	if NumKinds != 8 {
		t.Errorf("NumKinds = %d, want 8", NumKinds)
	}
	for k := 0; k < NumKinds; k++ {
		if Kind(k).String() == "unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}
