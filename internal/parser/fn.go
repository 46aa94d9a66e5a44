package parser

import (
	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

// parseFuncDecl parses `fun name(params) [: Type] block`.
func (p *Parser) parseFuncDecl() (ast.StmtID, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.ParseExpr, "expected a function name after 'fun'")
	if !ok {
		return ast.NoStmtID, false
	}

	params, ok := p.parseParams()
	if !ok {
		return ast.NoStmtID, false
	}

	var ret *ast.TypeAnnotation
	if p.at(token.Colon) {
		p.advance()
		ann, ok := p.parseTypeAnnotation()
		if !ok {
			return ast.NoStmtID, false
		}
		ret = &ann
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	span := kw.Span
	if len(body) > 0 {
		span = source.Merge(kw.Span, p.prog.Stmts.Get(body[len(body)-1]).Span)
	}
	return p.prog.Stmts.NewFuncDecl(span, ast.FuncDeclData{
		Name:       name.Text,
		Params:     params,
		ReturnType: ret,
		Body:       body,
	}), true
}

// parseParams parses `(name [: Type], ...)`.
func (p *Parser) parseParams() ([]ast.FuncParam, bool) {
	if _, ok := p.expect(token.LParen, diag.ParseExpr, "expected '(' to start the parameter list"); !ok {
		return nil, false
	}
	var params []ast.FuncParam
	if !p.at(token.RParen) {
		for {
			nameTok, ok := p.expect(token.Ident, diag.ParseExpr, "expected a parameter name")
			if !ok {
				return nil, false
			}
			param := ast.FuncParam{Name: nameTok.Text, Span: nameTok.Span}
			if p.at(token.Colon) {
				p.advance()
				ann, ok := p.parseTypeAnnotation()
				if !ok {
					return nil, false
				}
				param.Type = &ann
				param.Span = source.Merge(param.Span, ann.Span)
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expectClose(token.RParen, diag.ParseMissingRParen, ")", "expected ')' to close the parameter list"); !ok {
		return nil, false
	}
	return params, true
}

// parseClassDecl parses a class body of property declarations and methods.
// Class bodies are parsed but method dispatch is not semantically checked
// beyond presence (spec.md §1 Non-goals).
func (p *Parser) parseClassDecl() (ast.StmtID, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.ParseExpr, "expected a class name after 'class'")
	if !ok {
		return ast.NoStmtID, false
	}

	if p.at(token.NEWLINE) {
		p.advance()
	}
	if _, ok := p.expect(token.INDENT, diag.ParseIndent, "expected an indented class body"); !ok {
		return ast.NoStmtID, false
	}

	var properties, methods []ast.StmtID
	p.skipBlankLines()
	for !p.at(token.DEDENT) && !p.at(token.EOF) {
		switch {
		case p.at(token.KwFun):
			m, ok := p.parseFuncDecl()
			if !ok {
				return ast.NoStmtID, false
			}
			methods = append(methods, m)
		case p.atOr(token.KwLet, token.KwMut, token.KwConst, token.KwList, token.KwDict):
			d, ok := p.parseDeclaration()
			if !ok {
				return ast.NoStmtID, false
			}
			properties = append(properties, d)
		default:
			p.fail(diag.ParseExpr, p.errorSpan(), "expected a property declaration or method inside the class body")
			return ast.NoStmtID, false
		}
		p.skipBlankLines()
	}
	closeTok, ok := p.expect(token.DEDENT, diag.ParseIndent, "expected the class body to close with a dedent")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.prog.Stmts.NewClassDecl(source.Merge(kw.Span, closeTok.Span), ast.ClassDeclData{
		Name:       name.Text,
		Properties: properties,
		Methods:    methods,
	}), true
}
