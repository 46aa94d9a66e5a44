package parser

import (
	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

// parseUnary handles the prefix operators '-' and 'not' (spec.md §4.I:
// unary '-' is numeric-only, 'not' takes Bool or Any), which bind looser
// than call/index/member access but tighter than every binary operator.
// Chaining is allowed so `not not x` and `--x` parse, matching a plain
// precedence-climbing prefix rule.
func (p *Parser) parseUnary() (ast.ExprID, bool) {
	switch p.cur.Kind {
	case token.Minus:
		op := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := source.Merge(op.Span, p.prog.Exprs.Get(operand).Span)
		return p.prog.Exprs.NewUnary(span, ast.UnaryNeg, operand), true
	case token.KwNot:
		op := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := source.Merge(op.Span, p.prog.Exprs.Get(operand).Span)
		return p.prog.Exprs.NewUnary(span, ast.UnaryNot, operand), true
	default:
		return p.parsePostfix()
	}
}

// parsePrimary handles literals, identifiers (including the `a::b`
// qualified-name special case, spec.md §4.E), 'self', grouping, and the
// list/dict literal forms.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	switch p.cur.Kind {
	case token.NumberLit:
		tok := p.advance()
		return p.prog.Exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LiteralNumber, Number: tok.Number}), true
	case token.StringLit:
		tok := p.advance()
		return p.prog.Exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LiteralString, Text: tok.Text}), true
	case token.KwTrue:
		tok := p.advance()
		return p.prog.Exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LiteralBool, Bool: true}), true
	case token.KwFalse:
		tok := p.advance()
		return p.prog.Exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LiteralBool, Bool: false}), true
	case token.KwNil:
		tok := p.advance()
		return p.prog.Exprs.NewLiteral(tok.Span, ast.LiteralData{Kind: ast.LiteralNil}), true
	case token.KwSelf:
		tok := p.advance()
		return p.prog.Exprs.NewVariable(tok.Span, "self"), true
	case token.Ident:
		return p.parseIdentOrQualified()
	case token.LParen:
		return p.parseGrouping()
	case token.LBracket:
		return p.parseListLiteral()
	case token.LBrace:
		return p.parseDictLiteral()
	default:
		p.failExpr(p.errorSpan(), "expected an expression")
		return ast.NoExprID, false
	}
}

// parseIdentOrQualified parses a bare identifier, folding any immediately
// following `::segment` chain into a single variable node named
// "a::b::c" (spec.md §4.E: "when the left side is a bare identifier,
// a::b produces a single variable node").
func (p *Parser) parseIdentOrQualified() (ast.ExprID, bool) {
	tok := p.advance()
	name := tok.Text
	span := tok.Span
	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.expect(token.Ident, diag.ParseExpr, "expected a name after '::'")
		if !ok {
			return ast.NoExprID, false
		}
		name += "::" + seg.Text
		span = source.Merge(span, seg.Span)
	}
	return p.prog.Exprs.NewVariable(span, name), true
}

// parseGrouping parses `(expr)`. Parenthesized grouping has no dedicated
// AST node; the inner expression is returned directly.
func (p *Parser) parseGrouping() (ast.ExprID, bool) {
	p.advance() // '('
	inner, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expectClose(token.RParen, diag.ParseMissingRParen, ")", "expected ')' to close the grouped expression"); !ok {
		return ast.NoExprID, false
	}
	return inner, true
}

// parseListLiteral parses `[expr, expr, ...]`.
func (p *Parser) parseListLiteral() (ast.ExprID, bool) {
	open := p.advance() // '['
	var items []ast.ExprID
	if !p.at(token.RBracket) {
		for {
			item, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			items = append(items, item)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	close, ok := p.expectClose(token.RBracket, diag.ParseMissingRBracket, "]", "expected ']' to close the list literal")
	if !ok {
		return ast.NoExprID, false
	}
	return p.prog.Exprs.NewLiteral(source.Merge(open.Span, close.Span), ast.LiteralData{
		Kind:  ast.LiteralList,
		Items: items,
	}), true
}

// parseDictLiteral parses `{key: value, key: value, ...}`.
func (p *Parser) parseDictLiteral() (ast.ExprID, bool) {
	open := p.advance() // '{'
	var keys, values []ast.ExprID
	if !p.at(token.RBrace) {
		for {
			key, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			if _, ok := p.expect(token.Colon, diag.ParseExpr, "expected ':' between a dict key and its value"); !ok {
				return ast.NoExprID, false
			}
			value, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			keys = append(keys, key)
			values = append(values, value)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	close, ok := p.expectClose(token.RBrace, diag.ParseMissingRBrace, "}", "expected '}' to close the dict literal")
	if !ok {
		return ast.NoExprID, false
	}
	return p.prog.Exprs.NewLiteral(source.Merge(open.Span, close.Span), ast.LiteralData{
		Kind:   ast.LiteralDict,
		Keys:   keys,
		Values: values,
	}), true
}
