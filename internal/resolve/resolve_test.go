package resolve

import (
	"fmt"
	"testing"

	"snask/internal/ast"
	"snask/internal/parser"
	"snask/internal/source"
)

type mapReader map[string]string

func (m mapReader) ReadFile(path string) (string, error) {
	if c, ok := m[path]; ok {
		return c, nil
	}
	return "", fmt.Errorf("no such file: %s", path)
}

func parseEntry(t *testing.T, src string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("entry.snask", []byte(src))
	prog, ok := parser.ParseProgram(fs.Get(fileID), parser.Options{})
	if !ok {
		t.Fatalf("parse failed for:\n%s", src)
	}
	return prog
}

func TestResolveFlattensPlainImport(t *testing.T) {
	reader := mapReader{
		"/proj/util.snask": "let u = 1;\n",
	}
	entry := parseEntry(t, "import \"util\";\nlet x = 2;\n")

	r, err := New(Options{Reader: reader, Native: nil, PackagesDir: "/pkgs"})
	if err != nil {
		t.Fatal(err)
	}
	merged, err := r.Resolve(entry, "/proj")
	if err != nil {
		t.Fatal(err)
	}
	if len(merged.Body) != 2 {
		t.Fatalf("expected 2 merged statements, got %d", len(merged.Body))
	}
	d0, ok := merged.Stmts.Decl(merged.Body[0])
	if !ok || d0.Name != "u" {
		t.Fatalf("expected first statement to be util's decl, got %+v", d0)
	}
	d1, ok := merged.Stmts.Decl(merged.Body[1])
	if !ok || d1.Name != "x" {
		t.Fatalf("expected second statement to be entry's decl, got %+v", d1)
	}
}

func TestResolveDropsDuplicateImports(t *testing.T) {
	reader := mapReader{
		"/proj/util.snask": "let u = 1;\n",
	}
	entry := parseEntry(t, "import \"util\";\nimport \"util\";\n")

	r, _ := New(Options{Reader: reader, PackagesDir: "/pkgs"})
	merged, err := r.Resolve(entry, "/proj")
	if err != nil {
		t.Fatal(err)
	}
	if len(merged.Body) != 1 {
		t.Fatalf("expected the duplicate import to be dropped, got %d statements", len(merged.Body))
	}
}

func TestResolveMissingModuleErrors(t *testing.T) {
	entry := parseEntry(t, "import \"nope\";\n")
	r, _ := New(Options{Reader: mapReader{}, PackagesDir: "/pkgs"})
	if _, err := r.Resolve(entry, "/proj"); err == nil {
		t.Fatal("expected an error for a missing module")
	}
}

func TestResolveNativeAliasRewrite(t *testing.T) {
	reader := mapReader{
		"/proj/io.snask": "print(fs_read(\"a.txt\"));\n",
	}
	entry := parseEntry(t, "import \"io\";\n")
	r, _ := New(Options{Reader: reader, Native: []string{"fs_read"}, PackagesDir: "/pkgs"})
	merged, err := r.Resolve(entry, "/proj")
	if err != nil {
		t.Fatal(err)
	}
	printData, ok := merged.Stmts.Print(merged.Body[0])
	if !ok || len(printData.Args) != 1 {
		t.Fatalf("expected a print statement, got %+v", printData)
	}
	call, ok := merged.Exprs.Call(printData.Args[0])
	if !ok {
		t.Fatalf("expected the print argument to be a call")
	}
	callee, ok := merged.Exprs.Variable(call.Callee)
	if !ok || callee.Name != "__fs_read" {
		t.Fatalf("expected native alias rewrite, got callee %+v", callee)
	}
}

func TestResolveNamespaceRewriteSkipsPrelude(t *testing.T) {
	reader := mapReader{
		"/proj/prelude.snask": "fun helper()\n    return 1;\nlet v = helper();\n",
	}
	entry := parseEntry(t, "import \"prelude\";\n")
	r, _ := New(Options{Reader: reader, Native: []string{}, PackagesDir: "/pkgs"})
	merged, err := r.Resolve(entry, "/proj")
	if err != nil {
		t.Fatal(err)
	}
	var fn *ast.FuncDeclData
	for _, id := range merged.Body {
		if d, ok := merged.Stmts.FuncDecl(id); ok {
			fn = d
		}
	}
	if fn == nil || fn.Name != "helper" {
		t.Fatalf("expected prelude's function name untouched, got %+v", fn)
	}
}

func TestResolveNamespaceRewriteRewritesLocalCallSites(t *testing.T) {
	reader := mapReader{
		"/proj/mathx.snask": "fun square(n)\n    return n;\nlet v = square(2);\n",
	}
	entry := parseEntry(t, "import \"mathx\";\n")
	r, _ := New(Options{Reader: reader, Native: []string{}, PackagesDir: "/pkgs"})
	merged, err := r.Resolve(entry, "/proj")
	if err != nil {
		t.Fatal(err)
	}

	var fnName string
	var declInit ast.ExprID
	for _, id := range merged.Body {
		if d, ok := merged.Stmts.FuncDecl(id); ok {
			fnName = d.Name
		}
		if d, ok := merged.Stmts.Decl(id); ok {
			declInit = d.Initializer
		}
	}
	if fnName != "mathx::square" {
		t.Fatalf("expected namespaced function name, got %q", fnName)
	}
	call, ok := merged.Exprs.Call(declInit)
	if !ok {
		t.Fatalf("expected v's initializer to be a call")
	}
	callee, ok := merged.Exprs.Variable(call.Callee)
	if !ok || callee.Name != "mathx::square" {
		t.Fatalf("expected rewritten call-site, got %+v", callee)
	}
}
