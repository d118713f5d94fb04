package ast

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/quill-lang/quill/internal/arena"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/symbols"
	"github.com/quill-lang/quill/internal/typesystem"
)

// Construction errors. These are defensive: the parser is expected to have
// validated well-formedness before reaching the factories.
var (
	ErrNilType        = errors.New("ast: nil type handle")
	ErrNilSubExpr     = errors.New("ast: nil sub-expression")
	ErrNilDecl        = errors.New("ast: nil declaration handle")
	ErrNilElements    = errors.New("ast: nil element sequence")
	ErrEmptySequence  = errors.New("ast: sequence must not be empty")
	ErrNoTrailingExpr = errors.New("ast: brace without trailing semicolon must end in an expression")
)

// Context owns all expression nodes of one compilation unit. Nodes are
// allocated from per-variant arenas and live exactly as long as the Context;
// there is no way to free an individual node. Factories validate their
// variant's preconditions and derive the resolved type, so an invariant-
// violating node is never constructible.
//
// Construction is single-threaded. Once built, the tree is immutable and may
// be read concurrently.
type Context struct {
	id       uuid.UUID
	unit     *typesystem.Type
	released bool
	nodes    int

	intLit  *arena.Arena[IntegerLiteral]
	declRef *arena.Arena[DeclRefExpr]
	tuple   *arena.Arena[TupleExpr]
	apply   *arena.Arena[ApplyExpr]
	seq     *arena.Arena[SequenceExpr]
	brace   *arena.Arena[BraceExpr]
	closure *arena.Arena[ClosureExpr]
	binary  *arena.Arena[BinaryExpr]

	// Backing arenas for owned element sequences, separate from the node
	// arenas so contiguous slice allocations don't fragment them.
	exprSlices  *arena.Arena[Expr]
	braceSlices *arena.Arena[BraceElement]
}

// NewContext returns an empty compilation unit. The unit type handle is
// needed for the brace typing rule and must not be nil.
func NewContext(unit *typesystem.Type) *Context {
	if unit == nil {
		panic("ast: NewContext with nil unit type")
	}
	return &Context{
		id:   uuid.New(),
		unit: unit,

		// Literals and references dominate real trees.
		intLit:  arena.New[IntegerLiteral](256),
		declRef: arena.New[DeclRefExpr](256),
		tuple:   arena.New[TupleExpr](64),
		apply:   arena.New[ApplyExpr](64),
		seq:     arena.New[SequenceExpr](32),
		brace:   arena.New[BraceExpr](32),
		closure: arena.New[ClosureExpr](32),
		binary:  arena.New[BinaryExpr](64),

		exprSlices:  arena.New[Expr](256),
		braceSlices: arena.New[BraceElement](64),
	}
}

// ID identifies the compilation unit, mainly for teardown diagnostics.
func (c *Context) ID() uuid.UUID { return c.id }

// Unit returns the unit type handle the context was built with.
func (c *Context) Unit() *typesystem.Type { return c.unit }

// NodeCount returns the number of nodes allocated so far.
func (c *Context) NodeCount() int { return c.nodes }

// Released reports whether the context has been torn down.
func (c *Context) Released() bool { return c.released }

// Release tears down the whole unit in one operation, regardless of how many
// nodes were allocated. Every node the context produced is invalid
// afterwards, and any further factory call panics.
func (c *Context) Release() {
	c.intLit.Release()
	c.declRef.Release()
	c.tuple.Release()
	c.apply.Release()
	c.seq.Release()
	c.brace.Release()
	c.closure.Release()
	c.binary.Release()
	c.exprSlices.Release()
	c.braceSlices.Release()
	c.released = true
}

func (c *Context) check() {
	if c.released {
		panic(fmt.Sprintf("ast: context %s used after release", c.id))
	}
}

// copyExprs moves an element sequence into arena-owned backing so the node
// holds it exclusively, independent of the caller's slice.
func (c *Context) copyExprs(src []Expr) []Expr {
	if len(src) == 0 {
		return nil
	}
	dst := c.exprSlices.AllocSlice(len(src))
	copy(dst, src)
	return dst
}

func (c *Context) copyBraceElems(src []BraceElement) []BraceElement {
	if len(src) == 0 {
		return nil
	}
	dst := c.braceSlices.AllocSlice(len(src))
	copy(dst, src)
	return dst
}

// NewIntegerLiteral builds a literal node such as '42'. The text is stored
// verbatim and ty is the literal's resolved type.
func (c *Context) NewIntegerLiteral(text string, loc source.Pos, ty *typesystem.Type) (*IntegerLiteral, error) {
	c.check()
	if ty == nil {
		return nil, fmt.Errorf("integer literal %q: %w", text, ErrNilType)
	}
	if text == "" {
		return nil, fmt.Errorf("integer literal at %s: empty literal text", loc)
	}
	e := c.intLit.Alloc()
	*e = IntegerLiteral{exprBase: exprBase{typ: ty}, text: text, loc: loc}
	c.nodes++
	return e, nil
}

// NewDeclRefExpr builds a reference to a declaration; the node's type is the
// declaration's type.
func (c *Context) NewDeclRefExpr(d *symbols.Decl, loc source.Pos) (*DeclRefExpr, error) {
	c.check()
	if d == nil {
		return nil, fmt.Errorf("decl ref at %s: %w", loc, ErrNilDecl)
	}
	e := c.declRef.Alloc()
	*e = DeclRefExpr{exprBase: exprBase{typ: d.Type()}, decl: d, loc: loc}
	c.nodes++
	return e, nil
}

// NewTupleExpr builds a parenthesized expression list. elems may be empty but
// not nil. ty is the tuple's resolved type except in the single-element case,
// where the tuple decays and takes its element's type.
func (c *Context) NewTupleExpr(lparen source.Pos, elems []Expr, rparen source.Pos, ty *typesystem.Type) (*TupleExpr, error) {
	c.check()
	if elems == nil {
		return nil, fmt.Errorf("tuple at %s: %w", lparen, ErrNilElements)
	}
	for i, sub := range elems {
		if sub == nil {
			return nil, fmt.Errorf("tuple at %s: element %d: %w", lparen, i, ErrNilSubExpr)
		}
	}
	if len(elems) == 1 {
		ty = elems[0].Type()
	} else if ty == nil {
		return nil, fmt.Errorf("tuple at %s: %w", lparen, ErrNilType)
	}
	e := c.tuple.Alloc()
	*e = TupleExpr{
		exprBase: exprBase{typ: ty},
		span:     source.Span{Start: lparen, End: rparen},
		elems:    c.copyExprs(elems),
	}
	c.nodes++
	return e, nil
}

// NewApplyExpr builds the application of arg to fn. The result type comes
// from the checker, since interpreting function types is not this package's
// business.
func (c *Context) NewApplyExpr(fn, arg Expr, ty *typesystem.Type) (*ApplyExpr, error) {
	c.check()
	if fn == nil || arg == nil {
		return nil, fmt.Errorf("apply: %w", ErrNilSubExpr)
	}
	if ty == nil {
		return nil, fmt.Errorf("apply at %s: %w", fn.StartLoc(), ErrNilType)
	}
	e := c.apply.Alloc()
	*e = ApplyExpr{exprBase: exprBase{typ: ty}, fn: fn, arg: arg}
	c.nodes++
	return e, nil
}

// NewSequenceExpr builds a non-empty evaluation sequence; its type is the
// type of the last element.
func (c *Context) NewSequenceExpr(elems []Expr) (*SequenceExpr, error) {
	c.check()
	if elems == nil {
		return nil, fmt.Errorf("sequence: %w", ErrNilElements)
	}
	if len(elems) == 0 {
		return nil, ErrEmptySequence
	}
	for i, sub := range elems {
		if sub == nil {
			return nil, fmt.Errorf("sequence: element %d: %w", i, ErrNilSubExpr)
		}
	}
	e := c.seq.Alloc()
	*e = SequenceExpr{
		exprBase: exprBase{typ: elems[len(elems)-1].Type()},
		elems:    c.copyExprs(elems),
	}
	c.nodes++
	return e, nil
}

// NewBraceExpr builds a brace block. trailingSemi records whether the last
// construct was terminated by ';': if it was, the block has unit type,
// otherwise the block takes the type of its trailing expression, which must
// then exist and be the expression case of BraceElement.
func (c *Context) NewBraceExpr(lbrace source.Pos, elems []BraceElement, trailingSemi bool, rbrace source.Pos) (*BraceExpr, error) {
	c.check()
	for i, el := range elems {
		switch el := el.(type) {
		case ExprElement:
			if el.Expr == nil {
				return nil, fmt.Errorf("brace at %s: element %d: %w", lbrace, i, ErrNilSubExpr)
			}
		case DeclElement:
			if el.Decl == nil {
				return nil, fmt.Errorf("brace at %s: element %d: %w", lbrace, i, ErrNilDecl)
			}
		default:
			return nil, fmt.Errorf("brace at %s: element %d: nil element", lbrace, i)
		}
	}
	ty := c.unit
	if !trailingSemi {
		if len(elems) == 0 {
			return nil, fmt.Errorf("brace at %s: %w", lbrace, ErrNoTrailingExpr)
		}
		last, ok := elems[len(elems)-1].(ExprElement)
		if !ok {
			return nil, fmt.Errorf("brace at %s: %w", lbrace, ErrNoTrailingExpr)
		}
		ty = last.Expr.Type()
	}
	e := c.brace.Alloc()
	*e = BraceExpr{
		exprBase:     exprBase{typ: ty},
		span:         source.Span{Start: lbrace, End: rbrace},
		elems:        c.copyBraceElems(elems),
		trailingSemi: trailingSemi,
	}
	c.nodes++
	return e, nil
}

// NewClosureExpr wraps input in an implicit closure whose result type is
// supplied by the checker.
func (c *Context) NewClosureExpr(input Expr, resultTy *typesystem.Type) (*ClosureExpr, error) {
	c.check()
	if input == nil {
		return nil, fmt.Errorf("closure: %w", ErrNilSubExpr)
	}
	if resultTy == nil {
		return nil, fmt.Errorf("closure at %s: %w", input.StartLoc(), ErrNilType)
	}
	e := c.closure.Alloc()
	*e = ClosureExpr{exprBase: exprBase{typ: resultTy}, input: input}
	c.nodes++
	return e, nil
}

// NewBinaryExpr builds an infix application; the node's type is the operator
// declaration's result type.
func (c *Context) NewBinaryExpr(lhs Expr, op *symbols.Decl, opLoc source.Pos, rhs Expr) (*BinaryExpr, error) {
	c.check()
	if lhs == nil || rhs == nil {
		return nil, fmt.Errorf("binary at %s: %w", opLoc, ErrNilSubExpr)
	}
	if op == nil {
		return nil, fmt.Errorf("binary at %s: %w", opLoc, ErrNilDecl)
	}
	e := c.binary.Alloc()
	*e = BinaryExpr{
		exprBase: exprBase{typ: op.ResultType()},
		lhs:      lhs,
		op:       op,
		opLoc:    opLoc,
		rhs:      rhs,
	}
	c.nodes++
	return e, nil
}
