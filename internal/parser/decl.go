package parser

import (
	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

// declKindFor maps the leading keyword token to the DeclKind it introduces.
func declKindFor(k token.Kind) ast.DeclKind {
	switch k {
	case token.KwMut:
		return ast.DeclMut
	case token.KwConst:
		return ast.DeclConst
	case token.KwList:
		return ast.DeclList
	case token.KwDict:
		return ast.DeclDict
	default:
		return ast.DeclLet
	}
}

// parseDeclaration parses `(let|mut|const|list|dict) name [: Type] = expr;`.
// Every declaration form requires a non-empty initializer (spec.md §3).
func (p *Parser) parseDeclaration() (ast.StmtID, bool) {
	kw := p.advance()
	kind := declKindFor(kw.Kind)

	name, ok := p.expect(token.Ident, diag.ParseExpr, "expected a name after the declaration keyword")
	if !ok {
		return ast.NoStmtID, false
	}

	var annotation *ast.TypeAnnotation
	if p.at(token.Colon) {
		p.advance()
		ann, ok := p.parseTypeAnnotation()
		if !ok {
			return ast.NoStmtID, false
		}
		annotation = &ann
	}

	if _, ok := p.expect(token.Assign, diag.ParseExpr, "expected '=' and an initializer"); !ok {
		return ast.NoStmtID, false
	}

	// A trailing '=' with nothing after it is the common typo spec.md §8
	// calls out by name: flag the cause so failExpr can attach it.
	p.nextExprCause = "missing value"
	init, ok := p.parseExpr()
	p.nextExprCause = ""
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the declaration")
	if !ok {
		return ast.NoStmtID, false
	}

	span := source.Merge(kw.Span, semi.Span)
	return p.prog.Stmts.NewDecl(span, ast.DeclData{
		Kind:        kind,
		Name:        name.Text,
		Annotation:  annotation,
		Initializer: init,
	}), true
}

// parseTypeAnnotation parses a single type name written in source.
func (p *Parser) parseTypeAnnotation() (ast.TypeAnnotation, bool) {
	tok, ok := p.expect(token.Ident, diag.ParseExpr, "expected a type name")
	if !ok {
		return ast.TypeAnnotation{}, false
	}
	return ast.TypeAnnotation{Name: tok.Text, Span: tok.Span}, true
}

// parseAssignment parses `name = expr;`.
func (p *Parser) parseAssignment() (ast.StmtID, bool) {
	name := p.advance()
	p.advance() // '='

	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the assignment")
	if !ok {
		return ast.NoStmtID, false
	}
	span := source.Merge(name.Span, semi.Span)
	return p.prog.Stmts.NewAssign(span, ast.AssignData{Name: name.Text, Value: value}), true
}

// parsePrint parses `print(expr, expr, ...);`.
func (p *Parser) parsePrint() (ast.StmtID, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.ParseExpr, "expected '(' after 'print'"); !ok {
		return ast.NoStmtID, false
	}

	var args []ast.ExprID
	if !p.at(token.RParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoStmtID, false
			}
			args = append(args, arg)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expectClose(token.RParen, diag.ParseMissingRParen, ")", "expected ')' to close print's argument list"); !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the print statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.prog.Stmts.NewPrint(source.Merge(kw.Span, semi.Span), args), true
}

// parseInput parses `input name : Type;`. Unlike a declaration, the type
// annotation is mandatory (spec.md §4.I: "the type must be provided").
func (p *Parser) parseInput() (ast.StmtID, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.ParseExpr, "expected a name after 'input'")
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.Colon, diag.ParseExpr, "expected ':' and a type after the input name"); !ok {
		return ast.NoStmtID, false
	}
	ann, ok := p.parseTypeAnnotation()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the input statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.prog.Stmts.NewInput(source.Merge(kw.Span, semi.Span), ast.InputData{Name: name.Text, Annotation: ann}), true
}
