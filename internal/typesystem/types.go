package typesystem

import "fmt"

// Type is an opaque handle to a resolved type. The expression tree stores and
// compares handles for identity only; type structure lives in the checker.
// Handles are interned, so two types are equal iff their pointers are equal.
type Type struct {
	name string
}

func (t *Type) Name() string { return t.name }

func (t *Type) String() string { return t.name }

// Builtin type names preloaded into every Table.
const (
	UnitName   = "Unit"
	BoolName   = "Bool"
	IntName    = "Int"
	DoubleName = "Double"
	StringName = "String"
)

// Table interns type handles for one compilation unit.
type Table struct {
	byName map[string]*Type
	unit   *Type
}

func NewTable() *Table {
	tb := &Table{byName: make(map[string]*Type)}
	tb.unit = tb.Intern(UnitName)
	for _, name := range []string{BoolName, IntName, DoubleName, StringName} {
		tb.Intern(name)
	}
	return tb
}

// Intern returns the handle for name, creating it on first use. The same name
// always yields the same handle.
func (tb *Table) Intern(name string) *Type {
	if t, ok := tb.byName[name]; ok {
		return t
	}
	t := &Type{name: name}
	tb.byName[name] = t
	return t
}

// Lookup returns the handle for name if it was interned before.
func (tb *Table) Lookup(name string) (*Type, bool) {
	t, ok := tb.byName[name]
	return t, ok
}

// Unit returns the canonical unit/void type handle.
func (tb *Table) Unit() *Type { return tb.unit }

// Len returns the number of interned types.
func (tb *Table) Len() int { return len(tb.byName) }

// MustLookup is Lookup for names the caller knows are present, e.g. builtins.
func (tb *Table) MustLookup(name string) *Type {
	t, ok := tb.byName[name]
	if !ok {
		panic(fmt.Sprintf("typesystem: type %q not interned", name))
	}
	return t
}
