package typesystem

import "testing"

func TestInternIdentity(t *testing.T) {
	tb := NewTable()

	a := tb.Intern("Vector")
	b := tb.Intern("Vector")
	if a != b {
		t.Errorf("Intern should return the same handle for the same name")
	}
	if a.Name() != "Vector" {
		t.Errorf("Name() = %q, want %q", a.Name(), "Vector")
	}

	c := tb.Intern("Matrix")
	if a == c {
		t.Errorf("distinct names should yield distinct handles")
	}
}

func TestBuiltins(t *testing.T) {
	tb := NewTable()

	for _, name := range []string{UnitName, BoolName, IntName, DoubleName, StringName} {
		got, ok := tb.Lookup(name)
		if !ok {
			t.Fatalf("builtin %q not preloaded", name)
		}
		if got != tb.Intern(name) {
			t.Errorf("builtin %q not interned consistently", name)
		}
	}

	if tb.Unit() != tb.MustLookup(UnitName) {
		t.Errorf("Unit() should be the interned Unit handle")
	}
}

func TestLookupMissing(t *testing.T) {
	tb := NewTable()
	if _, ok := tb.Lookup("Nope"); ok {
		t.Errorf("Lookup of unknown name should fail")
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustLookup of unknown name should panic")
		}
	}()
	NewTable().MustLookup("Nope")
}
