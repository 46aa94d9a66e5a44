package snask

import "testing"

func TestParseProgramReturnsStatements(t *testing.T) {
	prog, d := ParseProgram("let x = 1;\nprint(x);\n")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
}

func TestParseProgramReportsFirstError(t *testing.T) {
	_, d := ParseProgram("let x = ;\n")
	if d == nil {
		t.Fatalf("expected a diagnostic")
	}
}

func TestTokenizeIncludesEOF(t *testing.T) {
	toks, d := Tokenize("let x = 1;\n")
	if d != nil {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind.String() != "EOF" {
		t.Fatalf("expected stream to end in EOF, got %+v", toks)
	}
}

func TestAnalyzeFindsUndeclaredVariable(t *testing.T) {
	prog, d := ParseProgram("print(missing);\n")
	if d != nil {
		t.Fatalf("unexpected parse diagnostic: %+v", d)
	}
	diags := Analyze(prog)
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %+v", diags)
	}
}
