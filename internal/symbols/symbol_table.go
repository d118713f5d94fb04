package symbols

import (
	"fmt"

	"github.com/quill-lang/quill/internal/source"
	"github.com/quill-lang/quill/internal/typesystem"
)

// DeclKind classifies a declaration.
type DeclKind int

const (
	VarDecl DeclKind = iota
	FuncDecl
	OperatorDecl
)

func (k DeclKind) String() string {
	switch k {
	case VarDecl:
		return "var"
	case FuncDecl:
		return "func"
	case OperatorDecl:
		return "operator"
	default:
		return fmt.Sprintf("DeclKind(%d)", int(k))
	}
}

// Decl is an opaque handle to a named declaration. Expression nodes reference
// declarations only through this handle; the table owns the entries, the tree
// never does. Handles are unique per table entry, so identity comparison is
// the equality the tree relies on.
type Decl struct {
	name   string
	kind   DeclKind
	typ    *typesystem.Type // declared type
	result *typesystem.Type // call/application result, for funcs and operators
	pos    source.Pos
}

func (d *Decl) Name() string            { return d.name }
func (d *Decl) Kind() DeclKind          { return d.kind }
func (d *Decl) Type() *typesystem.Type  { return d.typ }
func (d *Decl) Pos() source.Pos         { return d.pos }

// ResultType returns the type an application of this declaration produces.
// For variables that is the declared type itself.
func (d *Decl) ResultType() *typesystem.Type {
	if d.result != nil {
		return d.result
	}
	return d.typ
}

func (d *Decl) String() string {
	return fmt.Sprintf("%s %s: %s", d.kind, d.name, d.typ)
}

// Table is the declaration table for one compilation unit. Lookups hand out
// non-owning handles.
type Table struct {
	byName map[string]*Decl
	order  []*Decl
}

func NewTable() *Table {
	return &Table{byName: make(map[string]*Decl)}
}

// Declare adds a declaration and returns its handle. Redeclaring a name in
// the same table is an error.
func (t *Table) Declare(name string, kind DeclKind, typ, result *typesystem.Type, pos source.Pos) (*Decl, error) {
	if name == "" {
		return nil, fmt.Errorf("symbols: empty declaration name")
	}
	if typ == nil {
		return nil, fmt.Errorf("symbols: declaration %q has no type", name)
	}
	if prev, ok := t.byName[name]; ok {
		return nil, fmt.Errorf("symbols: %q redeclared (previous at %s)", name, prev.pos)
	}
	d := &Decl{name: name, kind: kind, typ: typ, result: result, pos: pos}
	t.byName[name] = d
	t.order = append(t.order, d)
	return d, nil
}

// Resolve looks up a declaration by name.
func (t *Table) Resolve(name string) (*Decl, bool) {
	d, ok := t.byName[name]
	return d, ok
}

// Len returns the number of declarations.
func (t *Table) Len() int { return len(t.order) }

// All returns the declarations in declaration order.
func (t *Table) All() []*Decl { return t.order }
