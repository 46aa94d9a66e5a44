package resolve

import "snask/internal/ast"

// walkStmts visits every statement id in ids, recursing into nested bodies
// (function/class/conditional/loop blocks), calling fn once per statement
// in pre-order.
func walkStmts(prog *ast.Program, ids []ast.StmtID, fn func(ast.StmtID)) {
	for _, id := range ids {
		fn(id)
		st := prog.Stmts.Get(id)
		switch st.Kind {
		case ast.StmtFuncDecl:
			d, _ := prog.Stmts.FuncDecl(id)
			walkStmts(prog, d.Body, fn)
		case ast.StmtClassDecl:
			d, _ := prog.Stmts.ClassDecl(id)
			walkStmts(prog, d.Properties, fn)
			walkStmts(prog, d.Methods, fn)
		case ast.StmtConditional:
			d, _ := prog.Stmts.Conditional(id)
			walkStmts(prog, d.If.Body, fn)
			for _, b := range d.Elifs {
				walkStmts(prog, b.Body, fn)
			}
			walkStmts(prog, d.Else, fn)
		case ast.StmtLoop:
			d, _ := prog.Stmts.Loop(id)
			walkStmts(prog, d.Body, fn)
		}
	}
}

// stmtExprRoots returns the top-level expression ids directly owned by a
// statement (not recursing into nested statement bodies; walkStmts already
// reaches those separately).
func stmtExprRoots(prog *ast.Program, id ast.StmtID) []ast.ExprID {
	st := prog.Stmts.Get(id)
	switch st.Kind {
	case ast.StmtExpr:
		e, _ := prog.Stmts.ExprStmt(id)
		return []ast.ExprID{e}
	case ast.StmtDecl:
		d, _ := prog.Stmts.Decl(id)
		return []ast.ExprID{d.Initializer}
	case ast.StmtAssign:
		d, _ := prog.Stmts.Assign(id)
		return []ast.ExprID{d.Value}
	case ast.StmtPrint:
		d, _ := prog.Stmts.Print(id)
		return d.Args
	case ast.StmtReturn:
		d, _ := prog.Stmts.Return(id)
		return []ast.ExprID{d.Value}
	case ast.StmtConditional:
		d, _ := prog.Stmts.Conditional(id)
		roots := []ast.ExprID{d.If.Cond}
		for _, b := range d.Elifs {
			roots = append(roots, b.Cond)
		}
		return roots
	case ast.StmtLoop:
		d, _ := prog.Stmts.Loop(id)
		if d.Kind == ast.LoopWhile {
			return []ast.ExprID{d.Cond}
		}
		return []ast.ExprID{d.Iterable}
	case ast.StmtListPush:
		d, _ := prog.Stmts.ListPush(id)
		return []ast.ExprID{d.Value}
	case ast.StmtDictSet:
		d, _ := prog.Stmts.DictSet(id)
		return []ast.ExprID{d.Key, d.Value}
	default:
		return nil
	}
}

// exprVisitor receives callbacks during a walkExprTree traversal.
type exprVisitor struct {
	onVariable   func(id ast.ExprID, data *ast.VariableData)
	onCallCallee func(calleeID ast.ExprID)
}

// walkExprTree visits id and every expression it transitively contains,
// pre-order, invoking v's callbacks as each shape is encountered.
func walkExprTree(prog *ast.Program, id ast.ExprID, v exprVisitor) {
	if id == ast.NoExprID {
		return
	}
	e := prog.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprVariable:
		if v.onVariable != nil {
			d, _ := prog.Exprs.Variable(id)
			v.onVariable(id, d)
		}
	case ast.ExprUnary:
		d, _ := prog.Exprs.Unary(id)
		walkExprTree(prog, d.Operand, v)
	case ast.ExprBinary:
		d, _ := prog.Exprs.Binary(id)
		walkExprTree(prog, d.Left, v)
		walkExprTree(prog, d.Right, v)
	case ast.ExprCall:
		d, _ := prog.Exprs.Call(id)
		if v.onCallCallee != nil {
			v.onCallCallee(d.Callee)
		}
		walkExprTree(prog, d.Callee, v)
		for _, a := range d.Args {
			walkExprTree(prog, a, v)
		}
	case ast.ExprProperty:
		d, _ := prog.Exprs.Property(id)
		walkExprTree(prog, d.Target, v)
	case ast.ExprIndex:
		d, _ := prog.Exprs.Index(id)
		walkExprTree(prog, d.Target, v)
		walkExprTree(prog, d.Index, v)
	case ast.ExprLiteral:
		d, _ := prog.Exprs.Literal(id)
		for _, it := range d.Items {
			walkExprTree(prog, it, v)
		}
		for _, k := range d.Keys {
			walkExprTree(prog, k, v)
		}
		for _, val := range d.Values {
			walkExprTree(prog, val, v)
		}
	}
}

// walkAllExprs visits every expression reachable from ids (including
// inside nested statement bodies) with v's callbacks.
func walkAllExprs(prog *ast.Program, ids []ast.StmtID, v exprVisitor) {
	walkStmts(prog, ids, func(id ast.StmtID) {
		for _, root := range stmtExprRoots(prog, id) {
			walkExprTree(prog, root, v)
		}
	})
}
