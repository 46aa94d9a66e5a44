package sema

import (
	"testing"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/parser"
	"snask/internal/source"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.snask", []byte(src))
	prog, ok := parser.ParseProgram(fs.Get(id), parser.Options{})
	if !ok {
		t.Fatalf("parse failed for:\n%s", src)
	}
	return prog
}

func analyze(t *testing.T, src string) []diag.Diagnostic {
	t.Helper()
	return Analyze(parse(t, src))
}

func TestImmutableAssignmentReportsExactlyOneDiagnostic(t *testing.T) {
	errs := analyze(t, "let x = 1;\nx = 2;\n")
	if len(errs) != 1 || errs[0].Code != diag.SemImmutableAssign {
		t.Fatalf("expected exactly one SNASK-SEM-IMMUTABLE-ASSIGN diagnostic, got %+v", errs)
	}
}

func TestMutDeclAllowsReassignment(t *testing.T) {
	errs := analyze(t, "mut x = 1;\nx = 2;\n")
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics, got %+v", errs)
	}
}

func TestReturnTypeMismatchReportsTypeMismatch(t *testing.T) {
	errs := analyze(t, "fun g() : int\n    return \"hi\";\n")
	if len(errs) != 1 || errs[0].Code != diag.SemTypeMismatch {
		t.Fatalf("expected exactly one SNASK-SEM-TYPE-MISMATCH diagnostic, got %+v", errs)
	}
}

func TestReturnOutsideFunctionReportsError(t *testing.T) {
	errs := analyze(t, "return 1;\n")
	if len(errs) != 1 || errs[0].Code != diag.SemReturnOutsideFunc {
		t.Fatalf("expected exactly one SNASK-SEM-RETURN-OUTSIDE-FUNCTION diagnostic, got %+v", errs)
	}
}

func TestUndeclaredVariableReportsVarNotFound(t *testing.T) {
	errs := analyze(t, "print(missing);\n")
	if len(errs) != 1 || errs[0].Code != diag.SemVarNotFound {
		t.Fatalf("expected exactly one SNASK-SEM-VAR-NOT-FOUND diagnostic, got %+v", errs)
	}
}

func TestFunctionDeclaredTwiceInNestedScopeReportsRedecl(t *testing.T) {
	src := "fun outer()\n    fun inner()\n        return 1;\n    fun inner()\n        return 2;\n"
	errs := analyze(t, src)
	found := false
	for _, e := range errs {
		if e.Code == diag.SemFuncRedecl {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a SNASK-SEM-FUNC-REDECL diagnostic, got %+v", errs)
	}
}

func TestConditionalBranchesAnalyzeCleanly(t *testing.T) {
	src := "fun f()\n    let x = 1;\n    if x == 1\n        print(x);\n"
	errs := analyze(t, src)
	if len(errs) != 0 {
		t.Fatalf("expected 0 errors, got %+v", errs)
	}
}

func TestForInOverNonIterableReportsInvalidOperation(t *testing.T) {
	errs := analyze(t, "let n = 1;\nfor item in n\n    print(item);\n")
	found := false
	for _, e := range errs {
		if e.Code == diag.SemInvalidOperation {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a SNASK-SEM-INVALID-OPERATION diagnostic, got %+v", errs)
	}
}

func TestListPushOnUndeclaredTargetReportsVarNotFound(t *testing.T) {
	errs := analyze(t, "items.push(1);\n")
	if len(errs) != 1 || errs[0].Code != diag.SemVarNotFound {
		t.Fatalf("expected exactly one SNASK-SEM-VAR-NOT-FOUND diagnostic, got %+v", errs)
	}
}

func TestCallToUndeclaredNameReportsFuncNotFound(t *testing.T) {
	errs := analyze(t, "undeclaredFn(1, 2);\n")
	if len(errs) != 1 || errs[0].Code != diag.SemFuncNotFound {
		t.Fatalf("expected exactly one SNASK-SEM-FUNC-NOT-FOUND diagnostic, got %+v", errs)
	}
}

func TestCallWrongArityReportsWrongArity(t *testing.T) {
	errs := analyze(t, "fun add(a : int, b : int) : int\n    return a + b;\nlet x = add(1);\n")
	found := false
	for _, e := range errs {
		if e.Code == diag.SemWrongArity {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a SNASK-SEM-WRONG-ARITY diagnostic, got %+v", errs)
	}
}

func TestAnalyzeDeterministicErrorOrder(t *testing.T) {
	src := "print(a);\nprint(b);\n"
	errs1 := analyze(t, src)
	errs2 := analyze(t, src)
	if len(errs1) != 2 || len(errs2) != 2 {
		t.Fatalf("expected 2 errors in each run, got %d and %d", len(errs1), len(errs2))
	}
	if errs1[0].Message != errs2[0].Message || errs1[1].Message != errs2[1].Message {
		t.Fatalf("expected deterministic ordering across runs")
	}
	if errs1[0].Primary().Start.Offset > errs1[1].Primary().Start.Offset {
		t.Fatalf("expected errors in source order, got %+v", errs1)
	}
}

func TestAlienHintsOptIn(t *testing.T) {
	// "func" is not a Snask keyword, so `print(func);` parses as a plain
	// (unresolved) variable reference. With AlienHints on and enough
	// corroborating evidence, the resulting diagnostic gains a note; with
	// it off (the default), it does not.
	src := "print(func);\nprint(defer);\nprint(chan);\n"
	prog := parse(t, src)

	without, err := AnalyzeWithOptions(prog, Options{AlienHints: false})
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range without {
		if len(d.Notes) != 0 {
			t.Fatalf("expected no notes with AlienHints off, got %+v", d.Notes)
		}
	}

	prog2 := parse(t, src)
	with, err := AnalyzeWithOptions(prog2, Options{AlienHints: true})
	if err != nil {
		t.Fatal(err)
	}
	anyNoted := false
	for _, d := range with {
		if len(d.Notes) != 0 {
			anyNoted = true
		}
	}
	if !anyNoted {
		t.Fatalf("expected at least one note with AlienHints on, got %+v", with)
	}
}
