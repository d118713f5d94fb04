package ast

import "fmt"

// Visitor dispatches on the concrete variant of an Expr. One method per kind,
// no default case: a Visitor implementation that misses a variant does not
// compile, which is what keeps every downstream pass honest when the variant
// set grows.
type Visitor interface {
	VisitIntegerLiteral(e *IntegerLiteral)
	VisitDeclRefExpr(e *DeclRefExpr)
	VisitTupleExpr(e *TupleExpr)
	VisitApplyExpr(e *ApplyExpr)
	VisitSequenceExpr(e *SequenceExpr)
	VisitBraceExpr(e *BraceExpr)
	VisitClosureExpr(e *ClosureExpr)
	VisitBinaryExpr(e *BinaryExpr)
}

// Is reports whether e is the variant T, e.g. Is[*TupleExpr](e).
func Is[T Expr](e Expr) bool {
	_, ok := e.(T)
	return ok
}

// As narrows e to the variant T. It is total: the second result reports
// whether the kind matched, and no prior check is required.
func As[T Expr](e Expr) (T, bool) {
	t, ok := e.(T)
	return t, ok
}

// MustCast narrows e to the variant T. Calling it on the wrong kind is a
// programmer error and panics; callers that have not already checked the kind
// must use As instead.
func MustCast[T Expr](e Expr) T {
	t, ok := e.(T)
	if !ok {
		panic(fmt.Sprintf("ast: %s node is not %T", e.Kind(), t))
	}
	return t
}
