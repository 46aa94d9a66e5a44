package sema

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/types"
)

// typeOfBinary implements spec.md §4.I's binary operator rules.
func (a *Analyzer) typeOfBinary(prog *ast.Program, id ast.ExprID, e *ast.Expr) types.Type {
	d, _ := prog.Exprs.Binary(id)
	left := a.typeOfExpr(prog, d.Left)
	right := a.typeOfExpr(prog, d.Right)

	switch d.Op {
	case ast.BinaryAdd:
		return a.typeOfAdd(e, left, right)
	case ast.BinarySub, ast.BinaryMul, ast.BinaryDiv:
		return a.typeOfArith(e, d.Op, left, right)
	case ast.BinaryEq, ast.BinaryNotEq, ast.BinaryLt, ast.BinaryGt, ast.BinaryLtEq, ast.BinaryGtEq:
		if !types.Compatible(left, right) {
			a.report(diag.NewError(diag.SemInvalidOperation, e.Span,
				fmt.Sprintf("cannot compare %s and %s", left, right)))
		}
		return types.Simple(types.Bool)
	case ast.BinaryAnd, ast.BinaryOr:
		if (left.Kind == types.Bool || left.Kind == types.Any) && (right.Kind == types.Bool || right.Kind == types.Any) {
			return types.Simple(types.Bool)
		}
		a.report(diag.NewError(diag.SemInvalidOperation, e.Span,
			fmt.Sprintf("logical operator requires Bool operands, found %s and %s", left, right)))
		return types.Simple(types.Bool)
	default:
		return types.Simple(types.Any)
	}
}

func (a *Analyzer) typeOfAdd(e *ast.Expr, left, right types.Type) types.Type {
	switch {
	case types.IsNumeric(left.Kind) && types.IsNumeric(right.Kind):
		return numericResult(left, right)
	case left.Kind == types.String && right.Kind == types.String:
		return types.Simple(types.String)
	case left.Kind == types.String && right.Kind == types.Any, left.Kind == types.Any && right.Kind == types.String:
		return types.Simple(types.String)
	case left.Kind == types.Any || right.Kind == types.Any:
		return types.Simple(types.Any)
	default:
		a.report(diag.NewError(diag.SemInvalidOperation, e.Span,
			fmt.Sprintf("cannot add %s and %s", left, right)))
		return types.Simple(types.Any)
	}
}

func (a *Analyzer) typeOfArith(e *ast.Expr, op ast.BinaryOp, left, right types.Type) types.Type {
	if types.IsNumeric(left.Kind) && types.IsNumeric(right.Kind) {
		return numericResult(left, right)
	}
	if left.Kind == types.Any || right.Kind == types.Any {
		return types.Simple(types.Any)
	}
	a.report(diag.NewError(diag.SemInvalidOperation, e.Span,
		fmt.Sprintf("operator requires numeric operands, found %s and %s", left, right)))
	return types.Simple(types.Any)
}

func numericResult(left, right types.Type) types.Type {
	if left.Kind == types.Float || right.Kind == types.Float {
		return types.Simple(types.Float)
	}
	return types.Simple(types.Int)
}
