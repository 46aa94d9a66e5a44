// Package source models byte offsets, human-readable positions and spans
// shared by every token, AST node and diagnostic in the pipeline.
package source

import "fmt"

// Position is a single point in a source file.
//
// Line and Column are 1-based; Offset is the 0-based byte offset from the
// start of the file. The lexer owns the canonical advance policy: '\n'
// increments Line and resets Column to 1, every other byte advances Column
// by one.
type Position struct {
	Line   uint32
	Column uint32
	Offset uint32
}

// NewPosition builds a Position from a (line, column) pair with the byte
// offset left at zero; callers that only know line/column (e.g. tests) can
// use this without fabricating an offset.
func NewPosition(line, column uint32) Position {
	return Position{Line: line, Column: column}
}

// Advance returns the position reached after consuming byte b.
func (p Position) Advance(b byte) Position {
	p.Offset++
	if b == '\n' {
		p.Line++
		p.Column = 1
		return p
	}
	p.Column++
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open range [Start, End) of positions within one file.
type Span struct {
	File  FileID
	Start Position
	End   Position
}

// Single returns a zero-length span anchored at p.
func Single(file FileID, p Position) Span {
	return Span{File: file, Start: p, End: p}
}

// Merge returns the span covering both a and b: the min start and the max
// end, compared by byte offset. If the spans belong to different files, a
// is returned unchanged (spans never cross file boundaries).
func Merge(a, b Span) Span {
	if a.File != b.File {
		return a
	}
	out := a
	if b.Start.Offset < out.Start.Offset {
		out.Start = b.Start
	}
	if b.End.Offset > out.End.Offset {
		out.End = b.End
	}
	return out
}

// Empty reports whether the span covers zero bytes.
func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

// Len returns the span length in bytes.
func (s Span) Len() uint32 {
	if s.End.Offset < s.Start.Offset {
		return 0
	}
	return s.End.Offset - s.Start.Offset
}

// String renders the span as "line:col" when start and end coincide,
// "line:col-col" when it stays on one line, else "line:col-line:col".
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		if s.Start.Column == s.End.Column {
			return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
		}
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
