package sema

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/symbols"
	"snask/internal/types"
)

// checkConditional implements spec.md §4.I: each condition must yield
// Bool, numeric (coerced), or Any; each branch is analyzed in its own
// fresh scope.
func (a *Analyzer) checkConditional(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.Conditional(id)

	a.checkCondition(prog, d.If.Cond)
	a.analyzeScopedBody(prog, d.If.Body)

	for _, elif := range d.Elifs {
		a.checkCondition(prog, elif.Cond)
		a.analyzeScopedBody(prog, elif.Body)
	}

	if d.Else != nil {
		a.analyzeScopedBody(prog, d.Else)
	}
}

// checkLoop implements spec.md §4.I: while-conditions follow the same
// bool/numeric/Any rule; for-in loops bind the iterator to Any for lists,
// String for strings, Any for untyped iterables, else InvalidOperation.
func (a *Analyzer) checkLoop(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.Loop(id)

	if d.Kind == ast.LoopWhile {
		a.checkCondition(prog, d.Cond)
		a.analyzeScopedBody(prog, d.Body)
		return
	}

	iterableType := a.typeOfExpr(prog, d.Iterable)
	var elemKind types.Kind
	switch iterableType.Kind {
	case types.List, types.Any:
		elemKind = types.Any
	case types.String:
		elemKind = types.String
	default:
		a.report(diag.NewError(diag.SemInvalidOperation, st.Span,
			fmt.Sprintf("cannot iterate over %s", iterableType)))
		elemKind = types.Any
	}

	a.symbols.Enter()
	a.symbols.Define(symbols.Symbol{Name: d.Iterator, Type: types.Simple(elemKind), Kind: symbols.Immutable})
	a.analyzeBody(prog, d.Body)
	a.symbols.Exit()
}

func (a *Analyzer) checkCondition(prog *ast.Program, cond ast.ExprID) {
	condType := a.typeOfExpr(prog, cond)
	if condType.Kind == types.Bool || condType.Kind == types.Any || types.IsNumeric(condType.Kind) {
		return
	}
	a.report(diag.NewError(diag.SemInvalidCondition, prog.Exprs.Get(cond).Span,
		fmt.Sprintf("condition must be Bool, numeric, or Any; found %s", condType)))
}

// checkListPush implements spec.md §4.I: the target must exist and be of
// type List; inner expressions are type-checked for side effects.
func (a *Analyzer) checkListPush(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.ListPush(id)
	a.checkContainerTarget(d.Name, types.List, st)
	a.typeOfExpr(prog, d.Value)
}

// checkDictSet implements spec.md §4.I: the target must exist and be of
// type Dict; inner expressions are type-checked for side effects.
func (a *Analyzer) checkDictSet(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.DictSet(id)
	a.checkContainerTarget(d.Name, types.Dict, st)
	a.typeOfExpr(prog, d.Key)
	a.typeOfExpr(prog, d.Value)
}

func (a *Analyzer) checkContainerTarget(name string, want types.Kind, st *ast.Stmt) {
	sym, ok := a.symbols.Lookup(name)
	if !ok {
		a.reportUnresolved(diag.NewError(diag.SemVarNotFound, st.Span,
			fmt.Sprintf("%q is not declared", name)), name)
		return
	}
	if !types.Compatible(types.Simple(want), sym.Type) {
		a.report(diag.NewError(diag.SemTypeMismatch, st.Span,
			fmt.Sprintf("%q is %s, expected %s", name, sym.Type, want)))
	}
}
