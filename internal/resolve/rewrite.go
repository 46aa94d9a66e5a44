package resolve

import (
	"strings"

	"snask/internal/ast"
)

// preludeStem is the one module stem exempt from the namespace rewrite
// (spec.md §4.F: "skipped for module stem `prelude`").
const preludeStem = "prelude"

// applyRewrites runs the two AST transforms spec.md §4.F requires on a
// freshly parsed module before it is spliced into the merged program: the
// native-alias rewrite, then (unless stem is "prelude") the namespace
// rewrite.
func (r *Resolver) applyRewrites(prog *ast.Program, stem string) {
	r.nativeAliasRewrite(prog)
	if stem != preludeStem {
		namespaceRewrite(prog, stem)
	}
}

// nativeAliasRewrite renames every variable reference (including callees)
// whose name matches the closed native set to "__<name>". Re-running it on
// an already-rewritten node is a no-op, since a name already starting with
// "__" never matches the (un-prefixed) native set.
func (r *Resolver) nativeAliasRewrite(prog *ast.Program) {
	walkAllExprs(prog, prog.Body, exprVisitor{
		onVariable: func(_ ast.ExprID, data *ast.VariableData) {
			if r.native[data.Name] {
				data.Name = "__" + data.Name
			}
		},
	})
}

// namespaceRewrite prefixes every top-level `fun` declaration's name with
// "<stem>::" and rewrites local call-sites whose callee is a bare
// identifier matching one of those names to "<stem>::<name>". Only the
// callee position is touched; plain variable references are left alone so
// a parameter or local that shadows a function name keeps working.
func namespaceRewrite(prog *ast.Program, stem string) {
	topLevelFuncs := make(map[string]bool)
	for _, id := range prog.Body {
		st := prog.Stmts.Get(id)
		if st.Kind != ast.StmtFuncDecl {
			continue
		}
		d, _ := prog.Stmts.FuncDecl(id)
		topLevelFuncs[d.Name] = true
	}
	if len(topLevelFuncs) == 0 {
		return
	}

	prefix := stem + "::"
	for _, id := range prog.Body {
		st := prog.Stmts.Get(id)
		if st.Kind != ast.StmtFuncDecl {
			continue
		}
		d, _ := prog.Stmts.FuncDecl(id)
		d.Name = prefix + d.Name
	}

	walkAllExprs(prog, prog.Body, exprVisitor{
		onCallCallee: func(calleeID ast.ExprID) {
			callee := prog.Exprs.Get(calleeID)
			if callee == nil || callee.Kind != ast.ExprVariable {
				return
			}
			data, _ := prog.Exprs.Variable(calleeID)
			if strings.Contains(data.Name, "::") {
				return
			}
			if topLevelFuncs[data.Name] {
				data.Name = prefix + data.Name
			}
		},
	})
}
