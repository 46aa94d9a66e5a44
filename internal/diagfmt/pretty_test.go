package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"snask/internal/diag"
	"snask/internal/source"
)

func TestPrettyRendersHeaderAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.snask", []byte("let x = 1\nprint x + ;\n"))

	span := source.Span{
		File:  fileID,
		Start: source.NewPosition(2, 11),
		End:   source.NewPosition(2, 12),
	}
	d := diag.NewError(diag.ParseExpr, span, "expected an expression")
	d.WithHelp("add an expression after '+'")

	bag := diag.NewBag()
	bag.Add(d)
	bag.Sort()

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{Color: false})

	out := buf.String()
	if !strings.Contains(out, "test.snask:2:11: error SNASK-PARSE-EXPR: expected an expression") {
		t.Fatalf("missing header line, got:\n%s", out)
	}
	if !strings.Contains(out, "print x + ;") {
		t.Fatalf("missing source line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret, got:\n%s", out)
	}
	if !strings.Contains(out, "help: add an expression after '+'") {
		t.Fatalf("missing help line, got:\n%s", out)
	}
}

func TestPrettySeparatesMultipleDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.snask", []byte("let x = 1\nlet x = 2\n"))

	bag := diag.NewBag()
	bag.Add(diag.NewError(diag.SemVarRedecl, source.Single(fileID, source.NewPosition(2, 5)), "x is already declared"))
	bag.Add(diag.New(diag.Warning, diag.SemInvalidCondition, source.Single(fileID, source.NewPosition(1, 1)), "suspicious condition"))
	bag.Sort()

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{Color: false, Context: 0})

	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks separated by a blank line, got %d:\n%s", len(blocks), buf.String())
	}
}
