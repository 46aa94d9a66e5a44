package sema

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/symbols"
	"snask/internal/types"
)

// checkAssign implements spec.md §4.I's assignment rule: the target must
// exist; Constant/Immutable targets report ImmutableAssignment; the new
// value's type must be compatible with the existing binding's type.
func (a *Analyzer) checkAssign(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.Assign(id)
	valueType := a.typeOfExpr(prog, d.Value)

	sym, ok := a.symbols.Lookup(d.Name)
	if !ok {
		a.reportUnresolved(diag.NewError(diag.SemVarNotFound, st.Span,
			fmt.Sprintf("%q is not declared", d.Name)), d.Name)
		return
	}
	if sym.Kind == symbols.Constant || sym.Kind == symbols.Immutable {
		a.report(diag.NewError(diag.SemImmutableAssign, st.Span,
			fmt.Sprintf("cannot assign to %s %q", sym.Kind, d.Name)))
		return
	}
	if !types.Compatible(sym.Type, valueType) {
		a.report(diag.NewError(diag.SemTypeMismatch, st.Span,
			fmt.Sprintf("type mismatch: expected %s, found %s", sym.Type, valueType)))
	}
}

// checkInput implements spec.md §4.I's `input` rule: the type must be
// provided by the parser's annotation; define the name as Mutable.
func (a *Analyzer) checkInput(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.Input(id)
	k, ok := types.Lookup(d.Annotation.Name)
	if !ok {
		a.report(diag.NewError(diag.SemTypeMismatch, st.Span,
			fmt.Sprintf("unknown type %q", d.Annotation.Name)))
		k = types.Any
	}
	a.symbols.Define(symbols.Symbol{Name: d.Name, Type: types.Simple(k), Kind: symbols.Mutable})
}
