package symbols

import (
	"testing"

	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/typesystem"
)

func TestDeclareResolve(t *testing.T) {
	types := typesystem.NewTable()
	tab := NewTable()

	x, err := tab.Declare("x", VarDecl, types.MustLookup(typesystem.IntName), nil, source.Pos{Offset: 0, Line: 1, Column: 1})
	if err != nil {
		t.Fatalf("Declare(x): %v", err)
	}

	got, ok := tab.Resolve("x")
	if !ok {
		t.Fatalf("Resolve(x) failed")
	}
	if got != x {
		t.Errorf("Resolve should return the declared handle")
	}
	if got.Name() != "x" || got.Kind() != VarDecl {
		t.Errorf("unexpected handle contents: %v", got)
	}
	if got.ResultType() != got.Type() {
		t.Errorf("a variable's result type should be its declared type")
	}

	if _, ok := tab.Resolve("y"); ok {
		t.Errorf("Resolve(y) should fail")
	}
}

func TestOperatorResultType(t *testing.T) {
	types := typesystem.NewTable()
	tab := NewTable()

	fnType := types.Intern("(Int, Int) -> Double")
	plus, err := tab.Declare("+", OperatorDecl, fnType, types.MustLookup(typesystem.DoubleName), source.Pos{})
	if err != nil {
		t.Fatalf("Declare(+): %v", err)
	}
	if plus.ResultType() != types.MustLookup(typesystem.DoubleName) {
		t.Errorf("operator result type = %v, want Double", plus.ResultType())
	}
	if plus.Type() != fnType {
		t.Errorf("operator declared type should be the function type")
	}
}

func TestDeclareErrors(t *testing.T) {
	types := typesystem.NewTable()
	intType := types.MustLookup(typesystem.IntName)

	tests := []struct {
		name    string
		declare func(*Table) error
	}{
		{
			"duplicate name",
			func(tab *Table) error {
				if _, err := tab.Declare("x", VarDecl, intType, nil, source.Pos{}); err != nil {
					return err
				}
				_, err := tab.Declare("x", VarDecl, intType, nil, source.Pos{})
				if err == nil {
					t.Errorf("redeclaration should fail")
				}
				return nil
			},
		},
		{
			"empty name",
			func(tab *Table) error {
				if _, err := tab.Declare("", VarDecl, intType, nil, source.Pos{}); err == nil {
					t.Errorf("empty name should fail")
				}
				return nil
			},
		},
		{
			"nil type",
			func(tab *Table) error {
				if _, err := tab.Declare("y", VarDecl, nil, nil, source.Pos{}); err == nil {
					t.Errorf("nil type should fail")
				}
				return nil
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.declare(NewTable()); err != nil {
				t.Fatalf("setup: %v", err)
			}
		})
	}
}

func TestAllOrder(t *testing.T) {
	types := typesystem.NewTable()
	tab := NewTable()
	intType := types.MustLookup(typesystem.IntName)

	names := []string{"a", "b", "c"}
	for _, n := range names {
		if _, err := tab.Declare(n, VarDecl, intType, nil, source.Pos{}); err != nil {
			t.Fatalf("Declare(%s): %v", n, err)
		}
	}
	if tab.Len() != len(names) {
		t.Fatalf("Len() = %d, want %d", tab.Len(), len(names))
	}
	for i, d := range tab.All() {
		if d.Name() != names[i] {
			t.Errorf("All()[%d] = %s, want %s", i, d.Name(), names[i])
		}
	}
}
