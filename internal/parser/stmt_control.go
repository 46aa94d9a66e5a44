package parser

import (
	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

// parseConditional parses `if cond block (elif cond block)* (else block)?`.
// `elif` chains greedily; `else` is at most one (spec.md §4.E).
func (p *Parser) parseConditional() (ast.StmtID, bool) {
	kw := p.cur // parseCondBranch consumes the 'if' itself
	ifBranch, ok := p.parseCondBranch()
	if !ok {
		return ast.NoStmtID, false
	}
	data := ast.ConditionalData{If: ifBranch}
	end := ifBranch.Span

	for p.at(token.KwElif) {
		branch, ok := p.parseCondBranch()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Elifs = append(data.Elifs, branch)
		end = branch.Span
	}

	if p.at(token.KwElse) {
		p.advance()
		body, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Else = body
		if len(body) > 0 {
			end = p.prog.Stmts.Get(body[len(body)-1]).Span
		}
	}

	return p.prog.Stmts.NewConditional(source.Merge(kw.Span, end), data), true
}

// parseCondBranch parses a single `(if|elif) cond` header plus its block.
func (p *Parser) parseCondBranch() (ast.CondBranch, bool) {
	kw := p.advance() // 'if' or 'elif'
	cond, ok := p.parseExpr()
	if !ok {
		return ast.CondBranch{}, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.CondBranch{}, false
	}
	span := kw.Span
	if len(body) > 0 {
		span = source.Merge(kw.Span, p.prog.Stmts.Get(body[len(body)-1]).Span)
	}
	return ast.CondBranch{Cond: cond, Body: body, Span: span}, true
}

// parseWhile parses `while cond block`.
func (p *Parser) parseWhile() (ast.StmtID, bool) {
	kw := p.advance()
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	span := kw.Span
	if len(body) > 0 {
		span = source.Merge(kw.Span, p.prog.Stmts.Get(body[len(body)-1]).Span)
	}
	return p.prog.Stmts.NewLoop(span, ast.LoopData{Kind: ast.LoopWhile, Cond: cond, Body: body}), true
}

// parseFor parses `for name in iterable block`. The iterator name
// introduces a fresh binding scoped to body (spec.md §3 invariant).
func (p *Parser) parseFor() (ast.StmtID, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.ParseExpr, "expected an iterator name after 'for'")
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.KwIn, diag.ParseExpr, "expected 'in' after the iterator name"); !ok {
		return ast.NoStmtID, false
	}
	iterable, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	span := kw.Span
	if len(body) > 0 {
		span = source.Merge(kw.Span, p.prog.Stmts.Get(body[len(body)-1]).Span)
	}
	return p.prog.Stmts.NewLoop(span, ast.LoopData{
		Kind:     ast.LoopForIn,
		Iterator: name.Text,
		Iterable: iterable,
		Body:     body,
	}), true
}

// parseReturn parses `return [expr];`.
func (p *Parser) parseReturn() (ast.StmtID, bool) {
	kw := p.advance()
	value := ast.NoExprID
	if !p.at(token.Semicolon) {
		v, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = v
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the return statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.prog.Stmts.NewReturn(source.Merge(kw.Span, semi.Span), value), true
}
