package resolve

import "snask/internal/ast"

// copyStmt duplicates id (and everything it transitively references) from
// src's arenas into dst's, returning the new StmtID. This is how the
// resolver builds the single merged AST spec.md §4.F calls for: every
// non-import statement from every resolved module is spliced into one
// program's Stmts/Exprs arenas rather than left scattered across one
// ast.Program per file.
func copyStmt(dst, src *ast.Program, id ast.StmtID) ast.StmtID {
	st := src.Stmts.Get(id)
	switch st.Kind {
	case ast.StmtExpr:
		e, _ := src.Stmts.ExprStmt(id)
		return dst.Stmts.NewExprStmt(st.Span, copyExpr(dst, src, e))

	case ast.StmtDecl:
		d, _ := src.Stmts.Decl(id)
		return dst.Stmts.NewDecl(st.Span, ast.DeclData{
			Kind:        d.Kind,
			Name:        d.Name,
			Annotation:  d.Annotation,
			Initializer: copyExpr(dst, src, d.Initializer),
		})

	case ast.StmtAssign:
		d, _ := src.Stmts.Assign(id)
		return dst.Stmts.NewAssign(st.Span, ast.AssignData{
			Name:  d.Name,
			Value: copyExpr(dst, src, d.Value),
		})

	case ast.StmtPrint:
		d, _ := src.Stmts.Print(id)
		return dst.Stmts.NewPrint(st.Span, copyExprSlice(dst, src, d.Args))

	case ast.StmtInput:
		d, _ := src.Stmts.Input(id)
		return dst.Stmts.NewInput(st.Span, *d)

	case ast.StmtFuncDecl:
		d, _ := src.Stmts.FuncDecl(id)
		return dst.Stmts.NewFuncDecl(st.Span, ast.FuncDeclData{
			Name:       d.Name,
			Params:     d.Params,
			ReturnType: d.ReturnType,
			Body:       copyStmtSlice(dst, src, d.Body),
		})

	case ast.StmtClassDecl:
		d, _ := src.Stmts.ClassDecl(id)
		return dst.Stmts.NewClassDecl(st.Span, ast.ClassDeclData{
			Name:       d.Name,
			Properties: copyStmtSlice(dst, src, d.Properties),
			Methods:    copyStmtSlice(dst, src, d.Methods),
		})

	case ast.StmtReturn:
		d, _ := src.Stmts.Return(id)
		return dst.Stmts.NewReturn(st.Span, copyExpr(dst, src, d.Value))

	case ast.StmtConditional:
		d, _ := src.Stmts.Conditional(id)
		elifs := make([]ast.CondBranch, len(d.Elifs))
		for i, b := range d.Elifs {
			elifs[i] = ast.CondBranch{
				Cond: copyExpr(dst, src, b.Cond),
				Body: copyStmtSlice(dst, src, b.Body),
				Span: b.Span,
			}
		}
		return dst.Stmts.NewConditional(st.Span, ast.ConditionalData{
			If: ast.CondBranch{
				Cond: copyExpr(dst, src, d.If.Cond),
				Body: copyStmtSlice(dst, src, d.If.Body),
				Span: d.If.Span,
			},
			Elifs: elifs,
			Else:  copyStmtSlice(dst, src, d.Else),
		})

	case ast.StmtLoop:
		d, _ := src.Stmts.Loop(id)
		return dst.Stmts.NewLoop(st.Span, ast.LoopData{
			Kind:     d.Kind,
			Cond:     copyExpr(dst, src, d.Cond),
			Iterator: d.Iterator,
			Iterable: copyExpr(dst, src, d.Iterable),
			Body:     copyStmtSlice(dst, src, d.Body),
		})

	case ast.StmtListPush:
		d, _ := src.Stmts.ListPush(id)
		return dst.Stmts.NewListPush(st.Span, ast.ListPushData{
			Name:  d.Name,
			Value: copyExpr(dst, src, d.Value),
		})

	case ast.StmtDictSet:
		d, _ := src.Stmts.DictSet(id)
		return dst.Stmts.NewDictSet(st.Span, ast.DictSetData{
			Name:  d.Name,
			Key:   copyExpr(dst, src, d.Key),
			Value: copyExpr(dst, src, d.Value),
		})

	default:
		// StmtImport/StmtFromImport never reach here: the resolver handles
		// them before calling copyStmt.
		panic("resolve: copyStmt: unexpected kind " + st.Kind.String())
	}
}

func copyStmtSlice(dst, src *ast.Program, ids []ast.StmtID) []ast.StmtID {
	if ids == nil {
		return nil
	}
	out := make([]ast.StmtID, len(ids))
	for i, id := range ids {
		out[i] = copyStmt(dst, src, id)
	}
	return out
}

func copyExpr(dst, src *ast.Program, id ast.ExprID) ast.ExprID {
	if id == ast.NoExprID {
		return ast.NoExprID
	}
	e := src.Exprs.Get(id)
	switch e.Kind {
	case ast.ExprLiteral:
		d, _ := src.Exprs.Literal(id)
		return dst.Exprs.NewLiteral(e.Span, ast.LiteralData{
			Kind:   d.Kind,
			Number: d.Number,
			Text:   d.Text,
			Bool:   d.Bool,
			Items:  copyExprSlice(dst, src, d.Items),
			Keys:   copyExprSlice(dst, src, d.Keys),
			Values: copyExprSlice(dst, src, d.Values),
		})

	case ast.ExprVariable:
		d, _ := src.Exprs.Variable(id)
		return dst.Exprs.NewVariable(e.Span, d.Name)

	case ast.ExprUnary:
		d, _ := src.Exprs.Unary(id)
		return dst.Exprs.NewUnary(e.Span, d.Op, copyExpr(dst, src, d.Operand))

	case ast.ExprBinary:
		d, _ := src.Exprs.Binary(id)
		return dst.Exprs.NewBinary(e.Span, d.Op, copyExpr(dst, src, d.Left), copyExpr(dst, src, d.Right))

	case ast.ExprCall:
		d, _ := src.Exprs.Call(id)
		return dst.Exprs.NewCall(e.Span, copyExpr(dst, src, d.Callee), copyExprSlice(dst, src, d.Args))

	case ast.ExprProperty:
		d, _ := src.Exprs.Property(id)
		return dst.Exprs.NewProperty(e.Span, copyExpr(dst, src, d.Target), d.Name)

	case ast.ExprIndex:
		d, _ := src.Exprs.Index(id)
		return dst.Exprs.NewIndex(e.Span, copyExpr(dst, src, d.Target), copyExpr(dst, src, d.Index))

	default:
		panic("resolve: copyExpr: unexpected kind " + e.Kind.String())
	}
}

func copyExprSlice(dst, src *ast.Program, ids []ast.ExprID) []ast.ExprID {
	if ids == nil {
		return nil
	}
	out := make([]ast.ExprID, len(ids))
	for i, id := range ids {
		out[i] = copyExpr(dst, src, id)
	}
	return out
}
