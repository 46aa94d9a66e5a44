package lexer

import (
	"testing"

	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.snask", []byte(src))
	lx := New(fs.Get(id), Options{})
	return TokenizeAll(lx)
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestEmptySourceEmitsOnlyEOF(t *testing.T) {
	toks := lexAll(t, "")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected [EOF], got %v", kinds(toks))
	}
}

func TestBlankLinesAndCommentsOnlyLexToEOF(t *testing.T) {
	toks := lexAll(t, "\n\n// just a comment\n\n// another\n")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected [EOF], got %v", kinds(toks))
	}
}

func TestIndentDedentBalance(t *testing.T) {
	src := "fun f()\n    let x = 1;\n    if x == 1\n        print(x);\n"
	toks := lexAll(t, src)
	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.INDENT:
			indents++
		case token.DEDENT:
			dedents++
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced INDENT/DEDENT: %d vs %d over %v", indents, dedents, kinds(toks))
	}
	if indents != 2 {
		t.Fatalf("expected 2 INDENT tokens for a two-level nest, got %d", indents)
	}
}

func TestTokenSpanMatchesPosition(t *testing.T) {
	toks := lexAll(t, "let x = 1;")
	for _, tok := range toks {
		if tok.Kind == token.EOF || tok.Kind == token.INDENT || tok.Kind == token.DEDENT || tok.Kind == token.NEWLINE {
			continue
		}
		if tok.Span.Start.Line == 0 || tok.Span.Start.Column == 0 {
			t.Fatalf("token %v has an unset start position", tok)
		}
	}
}

func TestTwoCharOperatorsPreferredOverPrefix(t *testing.T) {
	toks := lexAll(t, "a == b != c <= d >= e :: f")
	want := []token.Kind{
		token.Ident, token.EqEq, token.Ident, token.BangEq, token.Ident,
		token.LtEq, token.Ident, token.GtEq, token.Ident, token.ColonColon, token.Ident, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kind count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %v want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestBangAloneIsAnError(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.snask", []byte("! x"))
	bag := newCapturingReporter()
	lx := New(fs.Get(id), Options{Reporter: bag})
	TokenizeAll(lx)
	if len(bag.diags) == 0 {
		t.Fatalf("expected a diagnostic for lone '!'")
	}
}

func TestUnterminatedStringReportsError(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.snask", []byte(`let x = "unterminated`))
	bag := newCapturingReporter()
	lx := New(fs.Get(id), Options{Reporter: bag})
	TokenizeAll(lx)
	if len(bag.diags) == 0 {
		t.Fatalf("expected a diagnostic for unterminated string")
	}
}

func TestNewlineInStringIsAnError(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.snask", []byte("\"abc\ndef\""))
	bag := newCapturingReporter()
	lx := New(fs.Get(id), Options{Reporter: bag})
	TokenizeAll(lx)
	if len(bag.diags) == 0 {
		t.Fatalf("expected a diagnostic for newline inside string")
	}
}

func TestInconsistentDedentReportsIndentError(t *testing.T) {
	// 2 then 4 spaces, then dedent to 1 space which matches no enclosing level (0, 2, 4).
	src := "fun f()\n  let x = 1;\n    let y = 2;\n let z = 3;\n"
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.snask", []byte(src))
	bag := newCapturingReporter()
	lx := New(fs.Get(id), Options{Reporter: bag})
	TokenizeAll(lx)
	if len(bag.diags) == 0 {
		t.Fatalf("expected an indentation diagnostic for mismatched dedent")
	}
}

func TestNumberLiteralParsesFloat(t *testing.T) {
	toks := lexAll(t, "3.14")
	if toks[0].Kind != token.NumberLit || toks[0].Number != 3.14 {
		t.Fatalf("unexpected number token: %+v", toks[0])
	}
}

func TestStringLiteralRawContent(t *testing.T) {
	toks := lexAll(t, `"hello world"`)
	if toks[0].Kind != token.StringLit || toks[0].Text != "hello world" {
		t.Fatalf("unexpected string token: %+v", toks[0])
	}
}

func TestCRLFTreatedAsNewline(t *testing.T) {
	toks := lexAll(t, "let x = 1;\r\nlet y = 2;\r\n")
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.NEWLINE {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 NEWLINE tokens, got %d (%v)", count, kinds(toks))
	}
}

type capturingReporter struct {
	diags []*diag.Diagnostic
}

func newCapturingReporter() *capturingReporter { return &capturingReporter{} }

func (r *capturingReporter) Report(d *diag.Diagnostic) {
	r.diags = append(r.diags, d)
}
