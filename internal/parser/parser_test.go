package parser

import (
	"testing"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/source"
)

type capturingReporter struct {
	diags []*diag.Diagnostic
}

func (r *capturingReporter) Report(d *diag.Diagnostic) {
	r.diags = append(r.diags, d)
}

func parse(t *testing.T, src string) (*ast.Program, bool, *capturingReporter) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.snask", []byte(src))
	rep := &capturingReporter{}
	prog, ok := ParseProgram(fs.Get(id), Options{Reporter: rep})
	return prog, ok, rep
}

func TestParseLetDeclarationWithAnnotation(t *testing.T) {
	prog, ok, rep := parse(t, "let x : int = 1 + 2;\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Body))
	}
	decl, ok := prog.Stmts.Decl(prog.Body[0])
	if !ok {
		t.Fatalf("expected a decl statement")
	}
	if decl.Kind != ast.DeclLet || decl.Name != "x" || decl.Annotation == nil || decl.Annotation.Name != "int" {
		t.Fatalf("unexpected decl shape: %+v", decl)
	}
	bin, ok := prog.Exprs.Binary(decl.Initializer)
	if !ok || bin.Op != ast.BinaryAdd {
		t.Fatalf("expected initializer to be an addition, got %+v ok=%v", bin, ok)
	}
}

func TestParseIfElifElse(t *testing.T) {
	src := "if x\n    print(1);\nelif y\n    print(2);\nelse\n    print(3);\n"
	prog, ok, rep := parse(t, src)
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	cond, ok := prog.Stmts.Conditional(prog.Body[0])
	if !ok {
		t.Fatalf("expected a conditional statement")
	}
	if len(cond.Elifs) != 1 || len(cond.Else) != 1 || len(cond.If.Body) != 1 {
		t.Fatalf("unexpected conditional shape: %+v", cond)
	}
}

func TestParseFuncDeclWithReturnType(t *testing.T) {
	src := "fun add(a : int, b : int) : int\n    return a + b;\n"
	prog, ok, rep := parse(t, src)
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	fn, ok := prog.Stmts.FuncDecl(prog.Body[0])
	if !ok {
		t.Fatalf("expected a func decl statement")
	}
	if fn.Name != "add" || len(fn.Params) != 2 || fn.ReturnType == nil || fn.ReturnType.Name != "int" {
		t.Fatalf("unexpected func decl shape: %+v", fn)
	}
	if fn.Params[0].Name != "a" || fn.Params[0].Type.Name != "int" {
		t.Fatalf("unexpected first param: %+v", fn.Params[0])
	}
}

func TestParseQualifiedNameFoldsIntoSingleVariable(t *testing.T) {
	prog, ok, rep := parse(t, "print(mod::helper);\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	print, ok := prog.Stmts.Print(prog.Body[0])
	if !ok || len(print.Args) != 1 {
		t.Fatalf("expected a single print arg")
	}
	v, ok := prog.Exprs.Variable(print.Args[0])
	if !ok || v.Name != "mod::helper" {
		t.Fatalf("expected a folded qualified-name variable, got %+v ok=%v", v, ok)
	}
}

func TestParseListPushAndDictSetStatements(t *testing.T) {
	prog, ok, rep := parse(t, "items.push(1);\ntable.set(1, 2);\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	push, ok := prog.Stmts.ListPush(prog.Body[0])
	if !ok || push.Name != "items" {
		t.Fatalf("expected a list-push statement, got %+v ok=%v", push, ok)
	}
	set, ok := prog.Stmts.DictSet(prog.Body[1])
	if !ok || set.Name != "table" {
		t.Fatalf("expected a dict-set statement, got %+v ok=%v", set, ok)
	}
}

func TestParseOrdinaryCallStatementIsNotRewritten(t *testing.T) {
	prog, ok, rep := parse(t, "doThing(1, 2);\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	expr, ok := prog.Stmts.ExprStmt(prog.Body[0])
	if !ok {
		t.Fatalf("expected an expression statement")
	}
	call, ok := prog.Exprs.Call(expr)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("expected a 2-arg call, got %+v ok=%v", call, ok)
	}
}

func TestParseUnaryPrecedenceBindsTighterThanFactor(t *testing.T) {
	prog, ok, rep := parse(t, "let x = -a * b;\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	decl, _ := prog.Stmts.Decl(prog.Body[0])
	bin, ok := prog.Exprs.Binary(decl.Initializer)
	if !ok || bin.Op != ast.BinaryMul {
		t.Fatalf("expected the top-level operator to be '*', got %+v ok=%v", bin, ok)
	}
	if _, ok := prog.Exprs.Unary(bin.Left); !ok {
		t.Fatalf("expected the left operand of '*' to be a unary negation")
	}
}

func TestParseLogicalOperatorsBindLooserThanComparison(t *testing.T) {
	prog, ok, rep := parse(t, "let x = a < b and c > d;\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	decl, _ := prog.Stmts.Decl(prog.Body[0])
	bin, ok := prog.Exprs.Binary(decl.Initializer)
	if !ok || bin.Op != ast.BinaryAnd {
		t.Fatalf("expected the top-level operator to be 'and', got %+v ok=%v", bin, ok)
	}
	if left, ok := prog.Exprs.Binary(bin.Left); !ok || left.Op != ast.BinaryLt {
		t.Fatalf("expected the left side of 'and' to be '<', got %+v ok=%v", left, ok)
	}
}

func TestParseListAndDictLiterals(t *testing.T) {
	prog, ok, rep := parse(t, "let x = [1, 2, 3];\nlet y = {1: 2, 3: 4};\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	declX, _ := prog.Stmts.Decl(prog.Body[0])
	list, ok := prog.Exprs.Literal(declX.Initializer)
	if !ok || list.Kind != ast.LiteralList || len(list.Items) != 3 {
		t.Fatalf("unexpected list literal: %+v ok=%v", list, ok)
	}
	declY, _ := prog.Stmts.Decl(prog.Body[1])
	dict, ok := prog.Exprs.Literal(declY.Initializer)
	if !ok || dict.Kind != ast.LiteralDict || len(dict.Keys) != 2 || len(dict.Values) != 2 {
		t.Fatalf("unexpected dict literal: %+v ok=%v", dict, ok)
	}
}

func TestParseMissingSemicolonReportsError(t *testing.T) {
	_, ok, rep := parse(t, "let x = 1\n")
	if ok {
		t.Fatalf("expected parse to fail")
	}
	if len(rep.diags) != 1 || rep.diags[0].Code != diag.ParseSemicolon {
		t.Fatalf("expected exactly one SNASK-PARSE-SEMICOLON diagnostic, got %v", rep.diags)
	}
}

func TestParseUnclosedParenReportsError(t *testing.T) {
	_, ok, rep := parse(t, "let x = (1 + 2;\n")
	if ok {
		t.Fatalf("expected parse to fail")
	}
	if len(rep.diags) != 1 || rep.diags[0].Code != diag.ParseMissingRParen {
		t.Fatalf("expected exactly one SNASK-PARSE-MISSING-RPAREN diagnostic, got %v", rep.diags)
	}
}

func TestParserNeverRecoversAfterFirstError(t *testing.T) {
	_, ok, rep := parse(t, "let x = ;\nlet y = ;\n")
	if ok {
		t.Fatalf("expected parse to fail")
	}
	if len(rep.diags) != 1 {
		t.Fatalf("expected exactly one diagnostic from the first failure, got %d: %v", len(rep.diags), rep.diags)
	}
}

func TestParseFromImportCurrentDir(t *testing.T) {
	prog, ok, rep := parse(t, "from / import util;\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	fi, ok := prog.Stmts.FromImport(prog.Body[0])
	if !ok || !fi.IsCurrentDir || fi.Module != "util" || len(fi.Segments) != 0 {
		t.Fatalf("unexpected from-import shape: %+v ok=%v", fi, ok)
	}
}

func TestParseFromImportWithSegments(t *testing.T) {
	prog, ok, rep := parse(t, "from lib/strings/ import text;\n")
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	fi, ok := prog.Stmts.FromImport(prog.Body[0])
	if !ok || fi.IsCurrentDir || fi.Module != "text" {
		t.Fatalf("unexpected from-import shape: %+v ok=%v", fi, ok)
	}
	if len(fi.Segments) != 2 || fi.Segments[0] != "lib" || fi.Segments[1] != "strings" {
		t.Fatalf("unexpected from-import segments: %+v", fi.Segments)
	}
}

func TestParseWhileAndForLoops(t *testing.T) {
	src := "while x\n    print(x);\nfor item in items\n    print(item);\n"
	prog, ok, rep := parse(t, src)
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	while, ok := prog.Stmts.Loop(prog.Body[0])
	if !ok || while.Kind != ast.LoopWhile {
		t.Fatalf("expected a while loop, got %+v ok=%v", while, ok)
	}
	forLoop, ok := prog.Stmts.Loop(prog.Body[1])
	if !ok || forLoop.Kind != ast.LoopForIn || forLoop.Iterator != "item" {
		t.Fatalf("expected a for-in loop, got %+v ok=%v", forLoop, ok)
	}
}

func TestParseClassDeclWithPropertiesAndMethods(t *testing.T) {
	src := "class Point\n    let x : int = 0;\n    fun sum() : int\n        return x;\n"
	prog, ok, rep := parse(t, src)
	if !ok {
		t.Fatalf("expected parse to succeed, diags=%v", rep.diags)
	}
	class, ok := prog.Stmts.ClassDecl(prog.Body[0])
	if !ok || class.Name != "Point" || len(class.Properties) != 1 || len(class.Methods) != 1 {
		t.Fatalf("unexpected class decl shape: %+v ok=%v", class, ok)
	}
}

func TestParseInputRequiresAnnotation(t *testing.T) {
	_, ok, rep := parse(t, "input name;\n")
	if ok {
		t.Fatalf("expected parse to fail without a type annotation")
	}
	if len(rep.diags) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", rep.diags)
	}
}

func TestMissingSemicolonPromotesToHelpQuickfix(t *testing.T) {
	_, ok, rep := parse(t, "let x = 1\n")
	if ok {
		t.Fatalf("expected parse to fail")
	}
	if len(rep.diags) != 1 || rep.diags[0].Code != diag.ParseSemicolon {
		t.Fatalf("expected exactly one SNASK-PARSE-SEMICOLON diagnostic, got %v", rep.diags)
	}
	if got, want := rep.diags[0].Help, "Insert ';'"; got != want {
		t.Fatalf("Help = %q, want %q (a confidence-95 fixit crosses the quickfix threshold)", got, want)
	}
}

func TestTrailingAssignReportsMissingValueCause(t *testing.T) {
	_, ok, rep := parse(t, "let x = ;\n")
	if ok {
		t.Fatalf("expected parse to fail")
	}
	if len(rep.diags) != 1 || rep.diags[0].Code != diag.ParseExpr {
		t.Fatalf("expected exactly one SNASK-PARSE-EXPR diagnostic, got %v", rep.diags)
	}
	found := false
	for _, n := range rep.diags[0].Notes {
		if n == "missing value" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a 'missing value' cause note, got %v", rep.diags[0].Notes)
	}
}

func TestUnclosedParenSuggestsClosingChar(t *testing.T) {
	_, ok, rep := parse(t, "let x = (1 + 2;\n")
	if ok {
		t.Fatalf("expected parse to fail")
	}
	if len(rep.diags) != 1 || rep.diags[0].Code != diag.ParseMissingRParen {
		t.Fatalf("expected exactly one SNASK-PARSE-MISSING-RPAREN diagnostic, got %v", rep.diags)
	}
	found := false
	for _, n := range rep.diags[0].Notes {
		if n == "Insert ')'" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a confidence-85 'Insert %q' note, got %v", ")", rep.diags[0].Notes)
	}
}
