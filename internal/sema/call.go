package sema

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/types"
)

// typeOfCall implements spec.md §4.I's call rule: if the callee type is
// Function(params, ret), enforce arity and per-argument compatibility;
// else if the callee is Any or flagged is_variadic in the symbol table,
// accept and return Any; else NotCallable.
func (a *Analyzer) typeOfCall(prog *ast.Program, id ast.ExprID, e *ast.Expr) types.Type {
	d, _ := prog.Exprs.Call(id)

	var calleeType types.Type
	variadic := false
	calleeExpr := prog.Exprs.Get(d.Callee)
	if calleeExpr != nil && calleeExpr.Kind == ast.ExprVariable {
		// A bare-identifier callee is a function reference, not a plain
		// variable use: report SemFuncNotFound rather than
		// SemVarNotFound when it doesn't resolve.
		nameData, _ := prog.Exprs.Variable(d.Callee)
		sym, found := a.symbols.Lookup(nameData.Name)
		if !found {
			a.reportUnresolved(diag.NewError(diag.SemFuncNotFound, calleeExpr.Span,
				fmt.Sprintf("function %q is not declared", nameData.Name)), nameData.Name)
			calleeType = types.Simple(types.Any)
		} else {
			calleeType = sym.Type
			variadic = sym.IsVariadic
		}
	} else {
		calleeType = a.typeOfExpr(prog, d.Callee)
	}

	for _, arg := range d.Args {
		a.typeOfExpr(prog, arg)
	}

	switch {
	case calleeType.Kind == types.Func:
		a.checkArity(e, calleeType, d.Args, prog)
		return types.Simple(calleeType.Return)
	case calleeType.Kind == types.Any || variadic:
		return types.Simple(types.Any)
	default:
		a.report(diag.NewError(diag.SemNotCallable, e.Span,
			fmt.Sprintf("%s is not callable", calleeType)))
		return types.Simple(types.Any)
	}
}

func (a *Analyzer) checkArity(e *ast.Expr, fn types.Type, args []ast.ExprID, prog *ast.Program) {
	if len(args) != len(fn.Params) {
		a.report(diag.NewError(diag.SemWrongArity, e.Span,
			fmt.Sprintf("expected %d argument(s), found %d", len(fn.Params), len(args))))
		return
	}
	for i, argID := range args {
		argType := a.typeOfExpr(prog, argID)
		want := types.Simple(fn.Params[i])
		if !types.Compatible(want, argType) {
			a.report(diag.NewError(diag.SemTypeMismatch, prog.Exprs.Get(argID).Span,
				fmt.Sprintf("argument %d: expected %s, found %s", i+1, want, argType)))
		}
	}
}

// typeOfProperty implements spec.md §4.I's property-access rule: Any
// propagates to Any; List.push / Dict.set yield their respective function
// signatures; anything else is either IndexAccessOnNonIndexable (the target
// isn't a container) or PropertyNotFound (the container has no such
// member).
func (a *Analyzer) typeOfProperty(prog *ast.Program, id ast.ExprID, e *ast.Expr) types.Type {
	d, _ := prog.Exprs.Property(id)
	target := a.typeOfExpr(prog, d.Target)

	switch target.Kind {
	case types.Any:
		return types.Simple(types.Any)
	case types.List:
		if d.Name == "push" {
			return types.NewFunc([]types.Kind{types.Any}, types.Void)
		}
		a.report(diag.NewError(diag.SemPropertyNotFound, e.Span,
			fmt.Sprintf("List has no property %q", d.Name)))
		return types.Simple(types.Any)
	case types.Dict:
		if d.Name == "set" {
			return types.NewFunc([]types.Kind{types.Any, types.Any}, types.Void)
		}
		a.report(diag.NewError(diag.SemPropertyNotFound, e.Span,
			fmt.Sprintf("Dict has no property %q", d.Name)))
		return types.Simple(types.Any)
	default:
		a.report(diag.NewError(diag.SemIndexOnNonIndexable, e.Span,
			fmt.Sprintf("%s has no properties", target)))
		return types.Simple(types.Any)
	}
}

// typeOfIndex implements spec.md §4.I's index-access rule: List[Int] ->
// Any, Dict[scalar] -> Any, String[Int] -> String. A wrong index type
// reports InvalidIndexType but is not fatal.
func (a *Analyzer) typeOfIndex(prog *ast.Program, id ast.ExprID, e *ast.Expr) types.Type {
	d, _ := prog.Exprs.Index(id)
	target := a.typeOfExpr(prog, d.Target)
	indexType := a.typeOfExpr(prog, d.Index)

	switch target.Kind {
	case types.List:
		if !types.IsNumeric(indexType.Kind) && indexType.Kind != types.Any {
			a.report(diag.NewError(diag.SemInvalidIndexType, e.Span,
				fmt.Sprintf("list index must be Int, found %s", indexType)))
		}
		return types.Simple(types.Any)
	case types.Dict:
		return types.Simple(types.Any)
	case types.String:
		if !types.IsNumeric(indexType.Kind) && indexType.Kind != types.Any {
			a.report(diag.NewError(diag.SemInvalidIndexType, e.Span,
				fmt.Sprintf("string index must be Int, found %s", indexType)))
		}
		return types.Simple(types.String)
	case types.Any:
		return types.Simple(types.Any)
	default:
		a.report(diag.NewError(diag.SemIndexOnNonIndexable, e.Span,
			fmt.Sprintf("%s is not indexable", target)))
		return types.Simple(types.Any)
	}
}
