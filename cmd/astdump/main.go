// Command astdump builds an expression tree from a treespec document and
// prints its dump. It is the quickest way to see what the compiler front end
// would hand to later passes for a given shape of input.
//
//	astdump testdata/binary.yaml
//	cat tree.yaml | astdump -color=never -
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"github.com/quill-lang/quill/internal/prettyprinter"
	"github.com/quill-lang/quill/internal/treespec"
)

var (
	colorMode = flag.String("color", "auto", "colorize output: auto, always or never")
	raw       = flag.Bool("raw", false, "print the raw node structure instead of the tree dump")
	indent    = flag.Int("indent", 2, "spaces per indentation level")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	data, err := readInput(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	f, err := treespec.Load(data)
	if err != nil {
		fatal(err)
	}
	u, err := f.Build()
	if err != nil {
		fatal(err)
	}

	if *raw {
		pretty.Println(u.Root)
		return
	}

	p := prettyprinter.NewTreePrinter()
	p.SetColor(useColor(*colorMode))
	p.SetIndentWidth(*indent)
	fmt.Println(p.Print(u.Root))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "astdump:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: astdump [flags] <tree.yaml | ->")
	flag.PrintDefaults()
}
