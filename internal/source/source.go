package source

import "fmt"

// Pos is a point location in a source file. The zero value means
// "no location" and is what nodes carry when a position was never recorded.
type Pos struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in bytes
}

// IsValid reports whether p refers to an actual source position.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p appears before q in the same file.
func (p Pos) Before(q Pos) bool {
	return p.Offset < q.Offset
}

// Span brackets a construct between two points, e.g. the parentheses of a
// tuple or the braces of a block.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

func (s Span) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// File maps byte offsets in a source buffer to line/column positions.
// Diagnostics are produced from stored Pos values, so the mapping is computed
// once, up front.
type File struct {
	name    string
	content []byte
	lines   []int // byte offset of the start of each line
}

// NewFile builds the offset-to-line index for content.
func NewFile(name string, content []byte) *File {
	lines := []int{0}
	for i, b := range content {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &File{name: name, content: content, lines: lines}
}

func (f *File) Name() string { return f.name }

// Size returns the length of the file content in bytes.
func (f *File) Size() int { return len(f.content) }

// Pos resolves a byte offset to a point location. Offsets outside the file
// yield the zero Pos.
func (f *File) Pos(offset int) Pos {
	if offset < 0 || offset > len(f.content) {
		return Pos{}
	}
	// Binary search for the line containing offset.
	lo, hi := 0, len(f.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lines[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Pos{
		Offset: offset,
		Line:   lo + 1,
		Column: offset - f.lines[lo] + 1,
	}
}
