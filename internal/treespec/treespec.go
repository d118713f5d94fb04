// Package treespec builds expression trees from a small YAML description.
// It exists for fixtures: golden tests and the astdump tool describe a tree,
// its declarations, and its types in one document, and treespec drives the
// ast factories to construct it. It is an input format only, not a
// serialization of built trees.
package treespec

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quill-lang/quill/internal/ast"
	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/symbols"
	"github.com/quill-lang/quill/internal/typesystem"
)

// File is the top-level document: the declarations a tree references, then
// the tree itself.
type File struct {
	Decls []Decl `yaml:"decls,omitempty"`
	Tree  *Node  `yaml:"tree"`
}

// Decl declares one symbol-table entry.
type Decl struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind,omitempty"` // var (default), func, operator
	Type   string `yaml:"type"`
	Result string `yaml:"result,omitempty"` // funcs and operators
	Loc    string `yaml:"loc,omitempty"`
}

// Node describes one expression node. Kind selects the variant; the other
// fields are per-variant and ignored where they don't apply.
type Node struct {
	Kind string `yaml:"kind"`

	Text   string `yaml:"text,omitempty"`   // int
	Type   string `yaml:"type,omitempty"`   // int, tuple, apply, closure
	Decl   string `yaml:"decl,omitempty"`   // ref
	Op     string `yaml:"op,omitempty"`     // binary
	Loc    string `yaml:"loc,omitempty"`    // point or opening bracket
	EndLoc string `yaml:"endLoc,omitempty"` // closing bracket (tuple, brace)

	Fn    *Node      `yaml:"fn,omitempty"`    // apply
	Arg   *Node      `yaml:"arg,omitempty"`   // apply
	Left  *Node      `yaml:"left,omitempty"`  // binary
	Right *Node      `yaml:"right,omitempty"` // binary
	Input *Node      `yaml:"input,omitempty"` // closure
	Elems []*Node    `yaml:"elems,omitempty"` // tuple, seq
	Body  []*Element `yaml:"body,omitempty"`  // brace
	Semi  bool       `yaml:"semi,omitempty"`  // brace trailing semicolon
}

// Element is one brace-body entry: exactly one of Expr or Decl is set.
type Element struct {
	Expr *Node  `yaml:"expr,omitempty"`
	Decl string `yaml:"decl,omitempty"`
}

// Unit is a built fixture: the tree plus the tables and context that own it.
type Unit struct {
	Types *typesystem.Table
	Decls *symbols.Table
	Ctx   *ast.Context
	Root  ast.Expr
}

// Load parses a treespec document.
func Load(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("treespec: %w", err)
	}
	if f.Tree == nil {
		return nil, fmt.Errorf("treespec: document has no tree")
	}
	return &f, nil
}

// Build constructs the declarations and the expression tree.
func (f *File) Build() (*Unit, error) {
	u := &Unit{
		Types: typesystem.NewTable(),
		Decls: symbols.NewTable(),
	}
	u.Ctx = ast.NewContext(u.Types.Unit())

	for _, d := range f.Decls {
		kind, err := declKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("treespec: decl %q: %w", d.Name, err)
		}
		var result *typesystem.Type
		if d.Result != "" {
			result = u.Types.Intern(d.Result)
		}
		loc, err := parseLoc(d.Loc)
		if err != nil {
			return nil, fmt.Errorf("treespec: decl %q: %w", d.Name, err)
		}
		if _, err := u.Decls.Declare(d.Name, kind, u.Types.Intern(d.Type), result, loc); err != nil {
			return nil, fmt.Errorf("treespec: %w", err)
		}
	}

	root, err := f.buildNode(f.Tree, u)
	if err != nil {
		return nil, err
	}
	u.Root = root
	return u, nil
}

func declKind(s string) (symbols.DeclKind, error) {
	switch s {
	case "", "var":
		return symbols.VarDecl, nil
	case "func":
		return symbols.FuncDecl, nil
	case "operator":
		return symbols.OperatorDecl, nil
	default:
		return 0, fmt.Errorf("unknown decl kind %q", s)
	}
}

// parseLoc reads a "line:col" point. An empty string is "no location".
func parseLoc(s string) (source.Pos, error) {
	if s == "" {
		return source.Pos{}, nil
	}
	line, col, ok := strings.Cut(s, ":")
	if !ok {
		return source.Pos{}, fmt.Errorf("bad location %q, want line:col", s)
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return source.Pos{}, fmt.Errorf("bad location %q, want line:col", s)
	}
	c, err := strconv.Atoi(col)
	if err != nil || c < 1 {
		return source.Pos{}, fmt.Errorf("bad location %q, want line:col", s)
	}
	return source.Pos{Line: l, Column: c}, nil
}

func (f *File) buildNode(n *Node, u *Unit) (ast.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("treespec: missing node")
	}
	loc, err := parseLoc(n.Loc)
	if err != nil {
		return nil, fmt.Errorf("treespec: %s node: %w", n.Kind, err)
	}
	end, err := parseLoc(n.EndLoc)
	if err != nil {
		return nil, fmt.Errorf("treespec: %s node: %w", n.Kind, err)
	}

	switch n.Kind {
	case "int":
		ty := n.Type
		if ty == "" {
			ty = typesystem.IntName
		}
		return u.Ctx.NewIntegerLiteral(n.Text, loc, u.Types.Intern(ty))

	case "ref":
		d, ok := u.Decls.Resolve(n.Decl)
		if !ok {
			return nil, fmt.Errorf("treespec: ref to undeclared %q", n.Decl)
		}
		return u.Ctx.NewDeclRefExpr(d, loc)

	case "tuple":
		elems, err := f.buildNodes(n.Elems, u)
		if err != nil {
			return nil, err
		}
		var ty *typesystem.Type
		switch {
		case n.Type != "":
			ty = u.Types.Intern(n.Type)
		case len(elems) == 0:
			ty = u.Types.Unit()
		case len(elems) == 1:
			// Decays in the factory; no type needed.
		default:
			return nil, fmt.Errorf("treespec: tuple with %d elements needs a type", len(elems))
		}
		return u.Ctx.NewTupleExpr(loc, elems, end, ty)

	case "apply":
		fn, err := f.buildNode(n.Fn, u)
		if err != nil {
			return nil, err
		}
		arg, err := f.buildNode(n.Arg, u)
		if err != nil {
			return nil, err
		}
		if n.Type == "" {
			return nil, fmt.Errorf("treespec: apply node needs a type")
		}
		return u.Ctx.NewApplyExpr(fn, arg, u.Types.Intern(n.Type))

	case "seq":
		elems, err := f.buildNodes(n.Elems, u)
		if err != nil {
			return nil, err
		}
		return u.Ctx.NewSequenceExpr(elems)

	case "brace":
		elems := make([]ast.BraceElement, 0, len(n.Body))
		for i, el := range n.Body {
			switch {
			case el == nil:
				return nil, fmt.Errorf("treespec: brace element %d is empty", i)
			case el.Expr != nil && el.Decl != "":
				return nil, fmt.Errorf("treespec: brace element %d sets both expr and decl", i)
			case el.Expr != nil:
				sub, err := f.buildNode(el.Expr, u)
				if err != nil {
					return nil, err
				}
				elems = append(elems, ast.ExprElement{Expr: sub})
			case el.Decl != "":
				d, ok := u.Decls.Resolve(el.Decl)
				if !ok {
					return nil, fmt.Errorf("treespec: brace decl references undeclared %q", el.Decl)
				}
				elems = append(elems, ast.DeclElement{Decl: d})
			default:
				return nil, fmt.Errorf("treespec: brace element %d sets neither expr nor decl", i)
			}
		}
		return u.Ctx.NewBraceExpr(loc, elems, n.Semi, end)

	case "closure":
		input, err := f.buildNode(n.Input, u)
		if err != nil {
			return nil, err
		}
		if n.Type == "" {
			return nil, fmt.Errorf("treespec: closure node needs a type")
		}
		return u.Ctx.NewClosureExpr(input, u.Types.Intern(n.Type))

	case "binary":
		lhs, err := f.buildNode(n.Left, u)
		if err != nil {
			return nil, err
		}
		rhs, err := f.buildNode(n.Right, u)
		if err != nil {
			return nil, err
		}
		op, ok := u.Decls.Resolve(n.Op)
		if !ok {
			return nil, fmt.Errorf("treespec: binary references undeclared operator %q", n.Op)
		}
		return u.Ctx.NewBinaryExpr(lhs, op, loc, rhs)

	default:
		return nil, fmt.Errorf("treespec: unknown node kind %q", n.Kind)
	}
}

func (f *File) buildNodes(nodes []*Node, u *Unit) ([]ast.Expr, error) {
	elems := make([]ast.Expr, 0, len(nodes))
	for _, n := range nodes {
		e, err := f.buildNode(n, u)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return elems, nil
}
