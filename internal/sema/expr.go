package sema

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/types"
)

// typeOfExpr dispatches on the expression's shape and returns its type,
// per spec.md §4.I's expression type rules, reporting diagnostics for any
// violation along the way without stopping the walk.
func (a *Analyzer) typeOfExpr(prog *ast.Program, id ast.ExprID) types.Type {
	if id == ast.NoExprID {
		return types.Simple(types.Void)
	}
	e := prog.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprLiteral:
		return a.typeOfLiteral(prog, id)

	case ast.ExprVariable:
		return a.typeOfVariable(prog, id, e)

	case ast.ExprUnary:
		return a.typeOfUnary(prog, id, e)

	case ast.ExprBinary:
		return a.typeOfBinary(prog, id, e)

	case ast.ExprCall:
		return a.typeOfCall(prog, id, e)

	case ast.ExprProperty:
		return a.typeOfProperty(prog, id, e)

	case ast.ExprIndex:
		return a.typeOfIndex(prog, id, e)

	default:
		return types.Simple(types.Any)
	}
}

func (a *Analyzer) typeOfVariable(prog *ast.Program, id ast.ExprID, e *ast.Expr) types.Type {
	d, _ := prog.Exprs.Variable(id)
	sym, ok := a.symbols.Lookup(d.Name)
	if !ok {
		a.reportUnresolved(diag.NewError(diag.SemVarNotFound, e.Span,
			fmt.Sprintf("%q is not declared", d.Name)), d.Name)
		return types.Simple(types.Any)
	}
	return sym.Type
}

func (a *Analyzer) typeOfUnary(prog *ast.Program, id ast.ExprID, e *ast.Expr) types.Type {
	d, _ := prog.Exprs.Unary(id)
	operand := a.typeOfExpr(prog, d.Operand)
	switch d.Op {
	case ast.UnaryNeg:
		if types.IsNumeric(operand.Kind) || operand.Kind == types.Any {
			return operand
		}
		a.report(diag.NewError(diag.SemInvalidOperation, e.Span,
			fmt.Sprintf("unary - requires a numeric operand, found %s", operand)))
		return types.Simple(types.Any)
	case ast.UnaryNot:
		if operand.Kind == types.Bool || operand.Kind == types.Any {
			return types.Simple(types.Bool)
		}
		a.report(diag.NewError(diag.SemInvalidOperation, e.Span,
			fmt.Sprintf("not requires a Bool operand, found %s", operand)))
		return types.Simple(types.Bool)
	default:
		return types.Simple(types.Any)
	}
}
