package prettyprinter

import (
	"strings"
	"testing"

	"github.com/quill-lang/quill/internal/treespec"
)

func buildRoot(t *testing.T, doc string) *treespec.Unit {
	t.Helper()
	f, err := treespec.Load([]byte(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	u, err := f.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return u
}

func TestPrintLiteral(t *testing.T) {
	u := buildRoot(t, `tree: {kind: int, text: "42", loc: "1:1"}`)

	got := NewTreePrinter().Print(u.Root)
	want := "(integer_literal type='Int' value='42' loc=1:1)"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintOmitsMissingLoc(t *testing.T) {
	u := buildRoot(t, `tree: {kind: int, text: "7"}`)

	got := NewTreePrinter().Print(u.Root)
	if strings.Contains(got, "loc=") {
		t.Errorf("dump of a node without location should omit loc: %q", got)
	}
}

func TestPrintIndentWidth(t *testing.T) {
	u := buildRoot(t, `
tree:
  kind: closure
  type: Int
  input: {kind: int, text: "1", loc: "1:1"}
`)

	p := NewTreePrinter()
	p.SetIndentWidth(4)
	got := p.Print(u.Root)
	want := "(closure_expr type='Int'\n    (integer_literal type='Int' value='1' loc=1:1))"
	if got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestPrintColor(t *testing.T) {
	u := buildRoot(t, `tree: {kind: int, text: "42", loc: "1:1"}`)

	p := NewTreePrinter()
	p.SetColor(true)
	got := p.Print(u.Root)
	want := "(\x1b[36minteger_literal\x1b[0m type=\x1b[32m'Int'\x1b[0m value='42' loc=1:1)"
	if got != want {
		t.Errorf("colored Print() = %q, want %q", got, want)
	}
}

func TestPrinterIsReusable(t *testing.T) {
	u := buildRoot(t, `tree: {kind: int, text: "42", loc: "1:1"}`)

	p := NewTreePrinter()
	first := p.Print(u.Root)
	second := p.Print(u.Root)
	if first != second {
		t.Errorf("second Print() = %q, want %q", second, first)
	}
}
