package sema

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/symbols"
	"snask/internal/types"
)

// checkFuncDecl implements spec.md §4.I's function-declaration rule:
// construct Function(param_types, return_type); define in the current
// scope; enter a new scope; register parameters; analyze the body; exit
// scope. A duplicate in a non-global scope reports FunctionAlreadyDeclared;
// in the global scope the later declaration replaces the earlier one.
func (a *Analyzer) checkFuncDecl(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.FuncDecl(id)

	paramTypes := make([]types.Kind, len(d.Params))
	for i, p := range d.Params {
		paramTypes[i] = paramKind(p)
	}
	retKind := types.Void
	if d.ReturnType != nil {
		if k, ok := types.Lookup(d.ReturnType.Name); ok {
			retKind = k
		} else {
			a.report(diag.NewError(diag.SemTypeMismatch, d.ReturnType.Span,
				fmt.Sprintf("unknown type %q", d.ReturnType.Name)))
		}
	}
	fnType := types.NewFunc(paramTypes, retKind)

	if _, exists := a.symbols.LookupLocal(d.Name); exists && a.symbols.Depth() > 1 {
		a.report(diag.NewError(diag.SemFuncRedecl, st.Span,
			fmt.Sprintf("function %q is already declared in this scope", d.Name)))
	} else {
		a.symbols.Define(symbols.Symbol{Name: d.Name, Type: fnType, Kind: symbols.Function})
	}

	prevReturn, prevHas := a.currentReturn, a.hasCurrentReturn
	a.currentReturn, a.hasCurrentReturn = types.Simple(retKind), true

	a.symbols.Enter()
	for i, p := range d.Params {
		a.symbols.Define(symbols.Symbol{Name: p.Name, Type: types.Simple(paramTypes[i]), Kind: symbols.Parameter})
	}
	a.analyzeBody(prog, d.Body)
	a.symbols.Exit()

	a.currentReturn, a.hasCurrentReturn = prevReturn, prevHas
}

func paramKind(p ast.FuncParam) types.Kind {
	if p.Type == nil {
		return types.Any
	}
	if k, ok := types.Lookup(p.Type.Name); ok {
		return k
	}
	return types.Any
}

// checkReturn implements spec.md §4.I's return rule: require a current
// expected return type, else ReturnOutsideFunction; then check
// compatibility with the expected type.
func (a *Analyzer) checkReturn(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.Return(id)
	if !a.hasCurrentReturn {
		a.report(diag.NewError(diag.SemReturnOutsideFunc, st.Span, "return outside of a function"))
		if d.Value != ast.NoExprID {
			a.typeOfExpr(prog, d.Value)
		}
		return
	}

	var valueType types.Type
	if d.Value == ast.NoExprID {
		valueType = types.Simple(types.Void)
	} else {
		valueType = a.typeOfExpr(prog, d.Value)
	}
	if !types.Compatible(a.currentReturn, valueType) {
		a.report(diag.NewError(diag.SemTypeMismatch, st.Span,
			fmt.Sprintf("type mismatch: expected %s, found %s", a.currentReturn, valueType)))
	}
}
