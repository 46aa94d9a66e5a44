package sema

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/symbols"
	"snask/internal/types"
)

// checkDecl implements spec.md §4.I's declaration rule: evaluate the
// initializer's type; if an annotation is present, fail with TypeMismatch
// unless compatible; define a Symbol with the matching mutability kind.
// Duplicate in a non-global scope reports VariableAlreadyDeclared.
func (a *Analyzer) checkDecl(prog *ast.Program, id ast.StmtID, st *ast.Stmt) {
	d, _ := prog.Stmts.Decl(id)
	initType := a.typeOfExpr(prog, d.Initializer)

	declared := initType
	if d.Annotation != nil {
		annotated, ok := types.Lookup(d.Annotation.Name)
		if !ok {
			a.report(diag.NewError(diag.SemTypeMismatch, d.Annotation.Span,
				fmt.Sprintf("unknown type %q", d.Annotation.Name)))
		} else {
			declared = types.Simple(annotated)
			if !types.Compatible(declared, initType) {
				a.report(diag.NewError(diag.SemTypeMismatch, st.Span,
					fmt.Sprintf("type mismatch: expected %s, found %s", declared, initType)))
			}
		}
	}

	if _, exists := a.symbols.LookupLocal(d.Name); exists && a.symbols.Depth() > 1 {
		a.report(diag.NewError(diag.SemVarRedecl, st.Span,
			fmt.Sprintf("%q is already declared in this scope", d.Name)))
		return
	}

	a.symbols.Define(symbols.Symbol{Name: d.Name, Type: declared, Kind: declKindToSymbolKind(d.Kind)})
}

func declKindToSymbolKind(k ast.DeclKind) symbols.Kind {
	switch k {
	case ast.DeclMut:
		return symbols.Mutable
	case ast.DeclConst:
		return symbols.Constant
	default:
		// let / list / dict bindings are immutable unless reassigned
		// through a dedicated list-push/dict-set statement.
		return symbols.Immutable
	}
}
