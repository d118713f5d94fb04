package prettyprinter

// --- Tree Printer (indentation-nested dump of an expression tree) ---

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/symbols"
)

const (
	ansiReset = "\x1b[0m"
	ansiCyan  = "\x1b[36m"
	ansiGreen = "\x1b[32m"
)

// TreePrinter renders an expression tree as a nested s-expression form, one
// node per line, children indented under their parent:
//
//	(binary_expr type='Double' op='+' loc=1:3
//	  (decl_ref type='Int' decl='x' loc=1:1)
//	  (decl_ref type='Int' decl='y' loc=1:5))
//
// It works purely through the visitor and the node accessors, so it is the
// reference consumer for the dispatch surface.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
	width  int  // spaces per indent level
	color  bool // ANSI colors for node names and types
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{width: 2}
}

func (p *TreePrinter) SetColor(on bool) {
	p.color = on
}

func (p *TreePrinter) SetIndentWidth(width int) {
	if width > 0 {
		p.width = width
	}
}

// Print renders the tree rooted at e. The printer is reusable; each call
// starts from a clean buffer.
func (p *TreePrinter) Print(e ast.Expr) string {
	p.buf.Reset()
	p.indent = 0
	e.Accept(p)
	return p.buf.String()
}

func (p *TreePrinter) open(name string, e ast.Expr) {
	p.buf.WriteByte('(')
	if p.color {
		p.buf.WriteString(ansiCyan)
	}
	p.buf.WriteString(name)
	if p.color {
		p.buf.WriteString(ansiReset)
	}
	p.buf.WriteString(" type=")
	p.typeName(e)
}

func (p *TreePrinter) typeName(e ast.Expr) {
	if p.color {
		fmt.Fprintf(&p.buf, "%s'%s'%s", ansiGreen, e.Type(), ansiReset)
		return
	}
	fmt.Fprintf(&p.buf, "'%s'", e.Type())
}

func (p *TreePrinter) attr(key, val string) {
	fmt.Fprintf(&p.buf, " %s='%s'", key, val)
}

func (p *TreePrinter) loc(l source.Pos) {
	if l.IsValid() {
		fmt.Fprintf(&p.buf, " loc=%s", l)
	}
}

func (p *TreePrinter) close() {
	p.buf.WriteByte(')')
}

// child prints a sub-expression on its own line, one level deeper.
func (p *TreePrinter) child(e ast.Expr) {
	p.buf.WriteByte('\n')
	p.indent++
	p.buf.WriteString(strings.Repeat(" ", p.indent*p.width))
	e.Accept(p)
	p.indent--
}

// declChild prints an inline declaration of a brace block. Declarations are
// not expression nodes; only their handle is rendered.
func (p *TreePrinter) declChild(d *symbols.Decl) {
	p.buf.WriteByte('\n')
	p.indent++
	p.buf.WriteString(strings.Repeat(" ", p.indent*p.width))
	fmt.Fprintf(&p.buf, "(decl '%s' type='%s')", d.Name(), d.Type())
	p.indent--
}

func (p *TreePrinter) VisitIntegerLiteral(e *ast.IntegerLiteral) {
	p.open("integer_literal", e)
	p.attr("value", e.Text())
	p.loc(e.Loc())
	p.close()
}

func (p *TreePrinter) VisitDeclRefExpr(e *ast.DeclRefExpr) {
	p.open("decl_ref", e)
	p.attr("decl", e.Decl().Name())
	p.loc(e.Loc())
	p.close()
}

func (p *TreePrinter) VisitTupleExpr(e *ast.TupleExpr) {
	p.open("tuple_expr", e)
	p.loc(e.LParenLoc())
	for _, sub := range e.Elems() {
		p.child(sub)
	}
	p.close()
}

func (p *TreePrinter) VisitApplyExpr(e *ast.ApplyExpr) {
	p.open("apply_expr", e)
	p.child(e.Fn())
	p.child(e.Arg())
	p.close()
}

func (p *TreePrinter) VisitSequenceExpr(e *ast.SequenceExpr) {
	p.open("sequence_expr", e)
	for _, sub := range e.Elems() {
		p.child(sub)
	}
	p.close()
}

func (p *TreePrinter) VisitBraceExpr(e *ast.BraceExpr) {
	p.open("brace_expr", e)
	p.attr("semi", fmt.Sprintf("%t", e.TrailingSemi()))
	p.loc(e.LBraceLoc())
	for _, el := range e.Elems() {
		switch el := el.(type) {
		case ast.ExprElement:
			p.child(el.Expr)
		case ast.DeclElement:
			p.declChild(el.Decl)
		}
	}
	p.close()
}

func (p *TreePrinter) VisitClosureExpr(e *ast.ClosureExpr) {
	p.open("closure_expr", e)
	p.child(e.Input())
	p.close()
}

func (p *TreePrinter) VisitBinaryExpr(e *ast.BinaryExpr) {
	p.open("binary_expr", e)
	p.attr("op", e.Op().Name())
	p.loc(e.OpLoc())
	p.child(e.LHS())
	p.child(e.RHS())
	p.close()
}
