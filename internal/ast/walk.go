package ast

// Inspect traverses the tree rooted at e in depth-first preorder, calling f
// for each expression node. If f returns false for a node, its
// sub-expressions are skipped. Inline declarations in brace blocks are not
// expression nodes and are not reported.
func Inspect(e Expr, f func(Expr) bool) {
	e.Accept(&walker{f: f})
}

type walker struct {
	f func(Expr) bool
}

func (w *walker) VisitIntegerLiteral(e *IntegerLiteral) { w.f(e) }
func (w *walker) VisitDeclRefExpr(e *DeclRefExpr)       { w.f(e) }

func (w *walker) VisitTupleExpr(e *TupleExpr) {
	if !w.f(e) {
		return
	}
	for _, sub := range e.Elems() {
		sub.Accept(w)
	}
}

func (w *walker) VisitApplyExpr(e *ApplyExpr) {
	if !w.f(e) {
		return
	}
	e.Fn().Accept(w)
	e.Arg().Accept(w)
}

func (w *walker) VisitSequenceExpr(e *SequenceExpr) {
	if !w.f(e) {
		return
	}
	for _, sub := range e.Elems() {
		sub.Accept(w)
	}
}

func (w *walker) VisitBraceExpr(e *BraceExpr) {
	if !w.f(e) {
		return
	}
	for _, el := range e.Elems() {
		if el, ok := el.(ExprElement); ok {
			el.Expr.Accept(w)
		}
	}
}

func (w *walker) VisitClosureExpr(e *ClosureExpr) {
	if !w.f(e) {
		return
	}
	e.Input().Accept(w)
}

func (w *walker) VisitBinaryExpr(e *BinaryExpr) {
	if !w.f(e) {
		return
	}
	e.LHS().Accept(w)
	e.RHS().Accept(w)
}
