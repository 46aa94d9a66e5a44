// Package sema implements the semantic analyzer (spec.md §4.I): a single
// statement/expression walk over a resolved *ast.Program that binds names
// into a SemanticSymbolTable, checks types against the compatibility rule,
// and accumulates diagnostics rather than stopping at the first one.
package sema

import (
	"snask/internal/ast"
	"snask/internal/builtins"
	"snask/internal/diag"
	"snask/internal/dialect"
	"snask/internal/source"
	"snask/internal/symbols"
	"snask/internal/types"
)

// Options configures an Analyzer.
type Options struct {
	// AlienHints enables the opt-in foreign-dialect enrichment pass that
	// decorates VariableNotFound/FunctionNotFound diagnostics for names
	// that look like Rust/Go/TypeScript/Python keywords (spec.md §9,
	// SPEC_FULL.md §4.I "[NEW]"). Off by default: it never changes error
	// codes or counts, only adds notes.
	AlienHints bool
}

// Analyzer walks one program, collecting diagnostics in a Bag.
type Analyzer struct {
	opts    Options
	symbols *SemanticSymbolTable
	bag     *diag.Bag

	// currentReturn is the expected return type of the function currently
	// being analyzed; hasCurrentReturn is false outside any function body.
	currentReturn   types.Type
	hasCurrentReturn bool

	evidence  *dialect.Evidence
	unresolved []unresolvedName
}

type unresolvedName struct {
	diagnostic *diag.Diagnostic
	name       string
}

// New builds an Analyzer with a fresh symbol table seeded from the
// built-in environment (spec.md §4.I: "On construction, the built-in
// environment is registered into globals").
func New(opts Options) (*Analyzer, error) {
	env, err := builtins.Load()
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		opts:     opts,
		symbols:  newSemanticSymbolTable(env),
		bag:      diag.NewBag(),
		evidence: dialect.NewEvidence(),
	}, nil
}

// Analyze runs a fresh Analyzer over program and returns every diagnostic
// collected, in the order they were emitted (spec.md §8: "errors appear in
// source order" — the statement walk already proceeds in source order, so
// no explicit sort is needed here).
func Analyze(program *ast.Program) []diag.Diagnostic {
	a, err := New(Options{})
	if err != nil {
		return []diag.Diagnostic{*diag.NewError(diag.SemVarNotFound, source.Span{}, "built-in environment failed to load: "+err.Error())}
	}
	a.analyzeBody(program, program.Body)
	if a.opts.AlienHints {
		a.applyAlienHints()
	}
	out := make([]diag.Diagnostic, 0, a.bag.Len())
	for _, d := range a.bag.Items() {
		out = append(out, *d)
	}
	return out
}

// AnalyzeWithOptions is the Options-aware entry point, used by embedders
// that want the opt-in AlienHints pass.
func AnalyzeWithOptions(program *ast.Program, opts Options) ([]diag.Diagnostic, error) {
	a, err := New(opts)
	if err != nil {
		return nil, err
	}
	a.analyzeBody(program, program.Body)
	if a.opts.AlienHints {
		a.applyAlienHints()
	}
	out := make([]diag.Diagnostic, 0, a.bag.Len())
	for _, d := range a.bag.Items() {
		out = append(out, *d)
	}
	return out, nil
}

func (a *Analyzer) report(d *diag.Diagnostic) {
	a.bag.Add(d)
}

// reportUnresolved adds d to the bag and remembers the offending name so
// the opt-in AlienHints pass can later decide whether to attach a
// foreign-dialect note, without requiring a second AST walk.
func (a *Analyzer) reportUnresolved(d *diag.Diagnostic, name string) {
	a.report(d)
	dialect.RecordIdent(a.evidence, name)
	a.unresolved = append(a.unresolved, unresolvedName{diagnostic: d, name: name})
}

func newSemanticSymbolTable(env *builtins.Env) *SemanticSymbolTable {
	tbl := symbols.NewTable()
	for _, b := range env.All() {
		tbl.Define(symbols.Symbol{
			Name:       b.Name,
			Type:       b.Type,
			Kind:       symbols.Function,
			IsVariadic: b.Variadic,
		})
	}
	return &SemanticSymbolTable{Table: tbl}
}
