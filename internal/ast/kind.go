package ast

// Kind identifies the concrete variant behind an Expr handle. The set is
// closed: a new variant needs a tag here, a Visitor method, and a Context
// factory, and the compiler flags every Visitor implementation that misses
// the new case.
type Kind int

const (
	IntegerLiteralKind Kind = iota
	DeclRefExprKind
	TupleExprKind
	ApplyExprKind
	SequenceExprKind
	BraceExprKind
	ClosureExprKind
	BinaryExprKind
)

// NumKinds is the number of expression variants.
const NumKinds = int(BinaryExprKind) + 1

var kindNames = [NumKinds]string{
	IntegerLiteralKind: "integer_literal",
	DeclRefExprKind:    "decl_ref",
	TupleExprKind:      "tuple_expr",
	ApplyExprKind:      "apply_expr",
	SequenceExprKind:   "sequence_expr",
	BraceExprKind:      "brace_expr",
	ClosureExprKind:    "closure_expr",
	BinaryExprKind:     "binary_expr",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return "unknown"
	}
	return kindNames[k]
}
