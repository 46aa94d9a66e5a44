// Package snask is the external interface named in spec.md §6: it wires
// the lexer, parser, module resolver and semantic analyzer into the four
// entry points an embedder (CLI, LSP server, REPL) actually calls, without
// exposing any of their internal package boundaries.
package snask

import (
	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/lexer"
	"snask/internal/parser"
	"snask/internal/resolve"
	"snask/internal/sema"
	"snask/internal/source"
	"snask/internal/token"
)

// ParseProgram lexes and parses source as a standalone virtual file and
// returns the resulting AST. On the first hard parse error, diag reports
// that error and prog holds whatever statements were parsed before it
// failed (spec.md §4.E: the parser does not recover).
func ParseProgram(source_ string) (*ast.Program, *diag.Diagnostic) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(source_))

	bag := diag.NewBag()
	prog, ok := parser.ParseProgram(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if ok {
		return prog, nil
	}
	if items := bag.Items(); len(items) > 0 {
		return prog, items[0]
	}
	return prog, diag.NewError(diag.ParseExpr, source.Span{}, "parse failed with no diagnostic reported")
}

// Tokenize lexes source to completion and returns every token, including
// the trailing EOF (spec.md §6, used by tooling like semantic-token
// colorizers that want the whole stream rather than pulling incrementally).
// A lex-level diagnostic (unterminated string, bad indentation, unknown
// character) does not stop tokenization; the first one reported is
// returned alongside the full token slice.
func Tokenize(source_ string) ([]token.Token, *diag.Diagnostic) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte(source_))

	bag := diag.NewBag()
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	toks := lexer.TokenizeAll(lx)

	if items := bag.Items(); len(items) > 0 {
		return toks, items[0]
	}
	return toks, nil
}

// ResolveImports recursively loads and flattens every import/from-import
// reachable from program into a single merged *ast.Program, resolving
// relative module paths against currentDir (spec.md §4.F).
func ResolveImports(program *ast.Program, currentDir string) (*ast.Program, error) {
	return resolve.Resolve(program, currentDir)
}

// Analyze runs the semantic analyzer over an already-resolved program and
// returns every diagnostic collected, in source order (spec.md §4.I). The
// opt-in AlienHints enrichment pass is not enabled here; callers that want
// it should use internal/sema.AnalyzeWithOptions directly.
func Analyze(program *ast.Program) []diag.Diagnostic {
	return sema.Analyze(program)
}
