package ast

import (
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/symbols"
	"github.com/quill-lang/quill/internal/typesystem"
)

// Expr is the handle every pass traverses the tree through. The kind tag and
// the resolved type are fixed at construction; downstream passes narrow a
// handle with Is/As/MustCast or visit exhaustively with Accept, never by
// assuming a concrete shape.
//
// The interface is sealed: variants embed the unexported exprBase, so no
// package outside ast can add a ninth shape.
type Expr interface {
	Kind() Kind
	Type() *typesystem.Type
	StartLoc() source.Pos
	Accept(v Visitor)
	exprNode()
}

// exprBase carries the fields every variant shares. The resolved type is set
// once by the owning Context factory and never reassigned.
type exprBase struct {
	typ *typesystem.Type
}

func (b *exprBase) Type() *typesystem.Type { return b.typ }
func (b *exprBase) exprNode()              {}

// IntegerLiteral is an integer literal, like '42'. The literal text is kept
// verbatim; value parsing is left to the consumer.
type IntegerLiteral struct {
	exprBase
	text string
	loc  source.Pos
}

func (e *IntegerLiteral) Kind() Kind           { return IntegerLiteralKind }
func (e *IntegerLiteral) Text() string         { return e.text }
func (e *IntegerLiteral) Loc() source.Pos      { return e.loc }
func (e *IntegerLiteral) StartLoc() source.Pos { return e.loc }
func (e *IntegerLiteral) Accept(v Visitor)     { v.VisitIntegerLiteral(e) }

// DeclRefExpr is a reference to a declaration, like 'x'. The declaration
// handle is a non-owning lookup into the symbol table.
type DeclRefExpr struct {
	exprBase
	decl *symbols.Decl
	loc  source.Pos
}

func (e *DeclRefExpr) Kind() Kind           { return DeclRefExprKind }
func (e *DeclRefExpr) Decl() *symbols.Decl  { return e.decl }
func (e *DeclRefExpr) Loc() source.Pos      { return e.loc }
func (e *DeclRefExpr) StartLoc() source.Pos { return e.loc }
func (e *DeclRefExpr) Accept(v Visitor)     { v.VisitDeclRefExpr(e) }

// TupleExpr is a parenthesized expression list, like '(x+x)' or '(x, y, 4)'.
// A single-element tuple decays: its resolved type is the element's type, not
// a one-element tuple type, so "(4)" has type Int.
type TupleExpr struct {
	exprBase
	span  source.Span // the parentheses
	elems []Expr
}

func (e *TupleExpr) Kind() Kind            { return TupleExprKind }
func (e *TupleExpr) Elems() []Expr         { return e.elems }
func (e *TupleExpr) NumElems() int         { return len(e.elems) }
func (e *TupleExpr) LParenLoc() source.Pos { return e.span.Start }
func (e *TupleExpr) RParenLoc() source.Pos { return e.span.End }
func (e *TupleExpr) StartLoc() source.Pos  { return e.span.Start }
func (e *TupleExpr) Accept(v Visitor)      { v.VisitTupleExpr(e) }

// ApplyExpr is the application of an argument to a function, which occurs
// syntactically through juxtaposition: 'f(1,2)' applies the tuple '(1,2)' to
// 'f'. The argument is a single expression and is often a TupleExpr.
type ApplyExpr struct {
	exprBase
	fn  Expr
	arg Expr
}

func (e *ApplyExpr) Kind() Kind           { return ApplyExprKind }
func (e *ApplyExpr) Fn() Expr             { return e.fn }
func (e *ApplyExpr) Arg() Expr            { return e.arg }
func (e *ApplyExpr) StartLoc() source.Pos { return e.fn.StartLoc() }
func (e *ApplyExpr) Accept(v Visitor)     { v.VisitApplyExpr(e) }

// SequenceExpr is a series of expressions evaluated in order, like
// 'foo() bar()'. It is never empty, and its resolved type is the type of the
// last element.
type SequenceExpr struct {
	exprBase
	elems []Expr
}

func (e *SequenceExpr) Kind() Kind           { return SequenceExprKind }
func (e *SequenceExpr) Elems() []Expr        { return e.elems }
func (e *SequenceExpr) NumElems() int        { return len(e.elems) }
func (e *SequenceExpr) StartLoc() source.Pos { return e.elems[0].StartLoc() }
func (e *SequenceExpr) Accept(v Visitor)     { v.VisitSequenceExpr(e) }

// BraceElement is one entry of a BraceExpr body: either an expression or a
// declaration introduced inline. The two cases are an explicit sum so folds
// over block contents stay exhaustive.
type BraceElement interface {
	braceElement()
}

// ExprElement is the expression case of a BraceElement.
type ExprElement struct {
	Expr Expr
}

// DeclElement is the inline-declaration case of a BraceElement.
type DeclElement struct {
	Decl *symbols.Decl
}

func (ExprElement) braceElement() {}
func (DeclElement) braceElement() {}

// BraceExpr is a brace-enclosed sequence, like '{ 4; 5 }'. If the final
// construct is an expression not terminated by ';', the whole block has that
// expression's type; otherwise it has the unit type.
type BraceExpr struct {
	exprBase
	span         source.Span // the braces
	elems        []BraceElement
	trailingSemi bool
}

func (e *BraceExpr) Kind() Kind             { return BraceExprKind }
func (e *BraceExpr) Elems() []BraceElement  { return e.elems }
func (e *BraceExpr) NumElems() int          { return len(e.elems) }
func (e *BraceExpr) TrailingSemi() bool     { return e.trailingSemi }
func (e *BraceExpr) LBraceLoc() source.Pos  { return e.span.Start }
func (e *BraceExpr) RBraceLoc() source.Pos  { return e.span.End }
func (e *BraceExpr) StartLoc() source.Pos   { return e.span.Start }
func (e *BraceExpr) Accept(v Visitor)       { v.VisitBraceExpr(e) }

// ClosureExpr wraps an expression used in a function context whose type
// matches the function's result. The result type is supplied by the checker.
type ClosureExpr struct {
	exprBase
	input Expr
}

func (e *ClosureExpr) Kind() Kind           { return ClosureExprKind }
func (e *ClosureExpr) Input() Expr          { return e.input }
func (e *ClosureExpr) StartLoc() source.Pos { return e.input.StartLoc() }
func (e *ClosureExpr) Accept(v Visitor)     { v.VisitClosureExpr(e) }

// BinaryExpr is an infix application like 'x + y'. The operator is a
// non-owning reference to its declaration; the node's type is the operator's
// result type.
type BinaryExpr struct {
	exprBase
	lhs   Expr
	op    *symbols.Decl
	opLoc source.Pos
	rhs   Expr
}

func (e *BinaryExpr) Kind() Kind           { return BinaryExprKind }
func (e *BinaryExpr) LHS() Expr            { return e.lhs }
func (e *BinaryExpr) RHS() Expr            { return e.rhs }
func (e *BinaryExpr) Op() *symbols.Decl    { return e.op }
func (e *BinaryExpr) OpLoc() source.Pos    { return e.opLoc }
func (e *BinaryExpr) StartLoc() source.Pos { return e.lhs.StartLoc() }
func (e *BinaryExpr) Accept(v Visitor)     { v.VisitBinaryExpr(e) }
