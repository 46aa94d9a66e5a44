package source

import "testing"

func TestPositionAdvance(t *testing.T) {
	p := Position{Line: 1, Column: 1, Offset: 0}
	p = p.Advance('a')
	if p.Line != 1 || p.Column != 2 || p.Offset != 1 {
		t.Fatalf("unexpected position after 'a': %+v", p)
	}
	p = p.Advance('\n')
	if p.Line != 2 || p.Column != 1 || p.Offset != 2 {
		t.Fatalf("unexpected position after newline: %+v", p)
	}
}

func TestSpanMerge(t *testing.T) {
	a := Span{File: 1, Start: Position{Line: 1, Column: 1, Offset: 0}, End: Position{Line: 1, Column: 3, Offset: 2}}
	b := Span{File: 1, Start: Position{Line: 2, Column: 1, Offset: 5}, End: Position{Line: 2, Column: 4, Offset: 8}}
	m := Merge(a, b)
	if m.Start.Offset != 0 || m.End.Offset != 8 {
		t.Fatalf("unexpected merged span: %+v", m)
	}
}

func TestSpanMergeDifferentFiles(t *testing.T) {
	a := Span{File: 1, Start: Position{Offset: 0}, End: Position{Offset: 2}}
	b := Span{File: 2, Start: Position{Offset: 5}, End: Position{Offset: 8}}
	if got := Merge(a, b); got != a {
		t.Fatalf("cross-file merge should return a unchanged, got %+v", got)
	}
}

func TestSpanString(t *testing.T) {
	single := Single(1, Position{Line: 4, Column: 7, Offset: 30})
	if got, want := single.String(), "4:7"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	multiCol := Span{Start: Position{Line: 4, Column: 7}, End: Position{Line: 4, Column: 10}}
	if got, want := multiCol.String(), "4:7-10"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestFileSetLoadAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.snask", []byte("let x = 1;\r\nprint(x);\n"))
	f := fs.Get(id)
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected CRLF normalization flag")
	}
	if got, want := f.GetLine(1), "let x = 1;"; got != want {
		t.Fatalf("GetLine(1) = %q, want %q", got, want)
	}
	if got, want := f.GetLine(2), "print(x);"; got != want {
		t.Fatalf("GetLine(2) = %q, want %q", got, want)
	}
	if got := f.GetLine(99); got != "" {
		t.Fatalf("GetLine(99) = %q, want empty", got)
	}
}

func TestGetLineJustPastTrailingNewlineIsEmpty(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.snask", []byte("let x = 1;\r\nprint(x);\n"))
	f := fs.Get(id)
	if got := f.GetLine(3); got != "" {
		t.Fatalf("GetLine(3) on a 2-line trailing-newline file = %q, want empty", got)
	}
}
