package ast

import (
	"testing"

	"github.com/quill-lang/quill/internal/symbols"
)

// oneOfEach builds one node of every kind in a single context.
func oneOfEach(t *testing.T, f *fixture) []Expr {
	t.Helper()

	lit := f.lit(t, "42", pos(1, 1))

	x, err := f.decls.Declare("x", symbols.VarDecl, f.intType(), nil, pos(1, 1))
	if err != nil {
		t.Fatalf("Declare(x): %v", err)
	}
	plus, err := f.decls.Declare("+", symbols.OperatorDecl, f.types.Intern("(Int, Int) -> Int"), f.intType(), pos(1, 1))
	if err != nil {
		t.Fatalf("Declare(+): %v", err)
	}

	ref, err := f.ctx.NewDeclRefExpr(x, pos(1, 4))
	if err != nil {
		t.Fatalf("NewDeclRefExpr: %v", err)
	}
	tup, err := f.ctx.NewTupleExpr(pos(1, 6), []Expr{lit}, pos(1, 9), nil)
	if err != nil {
		t.Fatalf("NewTupleExpr: %v", err)
	}
	app, err := f.ctx.NewApplyExpr(ref, tup, f.intType())
	if err != nil {
		t.Fatalf("NewApplyExpr: %v", err)
	}
	seq, err := f.ctx.NewSequenceExpr([]Expr{lit, ref})
	if err != nil {
		t.Fatalf("NewSequenceExpr: %v", err)
	}
	brace, err := f.ctx.NewBraceExpr(pos(2, 1), []BraceElement{ExprElement{lit}}, false, pos(2, 6))
	if err != nil {
		t.Fatalf("NewBraceExpr: %v", err)
	}
	cl, err := f.ctx.NewClosureExpr(lit, f.intType())
	if err != nil {
		t.Fatalf("NewClosureExpr: %v", err)
	}
	bin, err := f.ctx.NewBinaryExpr(ref, plus, pos(3, 3), lit)
	if err != nil {
		t.Fatalf("NewBinaryExpr: %v", err)
	}

	return []Expr{lit, ref, tup, app, seq, brace, cl, bin}
}

func TestCheckedDispatch(t *testing.T) {
	f := newFixture(t)
	nodes := oneOfEach(t, f)

	checks := []struct {
		kind Kind
		is   func(Expr) bool
		as   func(Expr) (Expr, bool)
		cast func(Expr) Expr
	}{
		{IntegerLiteralKind,
			func(e Expr) bool { return Is[*IntegerLiteral](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*IntegerLiteral](e); return n, ok },
			func(e Expr) Expr { return MustCast[*IntegerLiteral](e) }},
		{DeclRefExprKind,
			func(e Expr) bool { return Is[*DeclRefExpr](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*DeclRefExpr](e); return n, ok },
			func(e Expr) Expr { return MustCast[*DeclRefExpr](e) }},
		{TupleExprKind,
			func(e Expr) bool { return Is[*TupleExpr](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*TupleExpr](e); return n, ok },
			func(e Expr) Expr { return MustCast[*TupleExpr](e) }},
		{ApplyExprKind,
			func(e Expr) bool { return Is[*ApplyExpr](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*ApplyExpr](e); return n, ok },
			func(e Expr) Expr { return MustCast[*ApplyExpr](e) }},
		{SequenceExprKind,
			func(e Expr) bool { return Is[*SequenceExpr](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*SequenceExpr](e); return n, ok },
			func(e Expr) Expr { return MustCast[*SequenceExpr](e) }},
		{BraceExprKind,
			func(e Expr) bool { return Is[*BraceExpr](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*BraceExpr](e); return n, ok },
			func(e Expr) Expr { return MustCast[*BraceExpr](e) }},
		{ClosureExprKind,
			func(e Expr) bool { return Is[*ClosureExpr](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*ClosureExpr](e); return n, ok },
			func(e Expr) Expr { return MustCast[*ClosureExpr](e) }},
		{BinaryExprKind,
			func(e Expr) bool { return Is[*BinaryExpr](e) },
			func(e Expr) (Expr, bool) { n, ok := As[*BinaryExpr](e); return n, ok },
			func(e Expr) Expr { return MustCast[*BinaryExpr](e) }},
	}

	for _, node := range nodes {
		for _, c := range checks {
			match := node.Kind() == c.kind

			if got := c.is(node); got != match {
				t.Errorf("Is[%s](%s) = %v, want %v", c.kind, node.Kind(), got, match)
			}

			narrowed, ok := c.as(node)
			if ok != match {
				t.Errorf("As[%s](%s) ok = %v, want %v", c.kind, node.Kind(), ok, match)
			}
			if match && narrowed != node {
				t.Errorf("As[%s] should return the same node", c.kind)
			}

			if match {
				if got := c.cast(node); got != node {
					t.Errorf("MustCast[%s] should return the same node", c.kind)
				}
			} else {
				assertPanics(t, node.Kind(), c.kind, func() { c.cast(node) })
			}
		}
	}
}

func assertPanics(t *testing.T, have, want Kind, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("MustCast[%s](%s) should panic", want, have)
		}
	}()
	f()
}
