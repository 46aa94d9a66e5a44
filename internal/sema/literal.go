package sema

import (
	"snask/internal/ast"
	"snask/internal/types"
)

// typeOfLiteral implements spec.md §4.I's literal rule: a number with no
// fractional part is Int, else Float; strings/bools/lists/dicts map to
// their respective tags; nil is Any.
func (a *Analyzer) typeOfLiteral(prog *ast.Program, id ast.ExprID) types.Type {
	d, _ := prog.Exprs.Literal(id)
	switch d.Kind {
	case ast.LiteralNumber:
		if d.Number == float64(int64(d.Number)) {
			return types.Simple(types.Int)
		}
		return types.Simple(types.Float)
	case ast.LiteralString:
		return types.Simple(types.String)
	case ast.LiteralBool:
		return types.Simple(types.Bool)
	case ast.LiteralNil:
		return types.Simple(types.Any)
	case ast.LiteralList:
		for _, item := range d.Items {
			a.typeOfExpr(prog, item)
		}
		return types.Simple(types.List)
	case ast.LiteralDict:
		for _, k := range d.Keys {
			a.typeOfExpr(prog, k)
		}
		for _, v := range d.Values {
			a.typeOfExpr(prog, v)
		}
		return types.Simple(types.Dict)
	default:
		return types.Simple(types.Any)
	}
}
