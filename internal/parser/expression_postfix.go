package parser

import (
	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

// parsePostfix applies the Call precedence level (spec.md §4.E: member
// access, call, and index all bind at the same tight level, left to
// right) on top of a primary expression: `.name`, `(args)`, `[index]`,
// chained and left-associative.
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.cur.Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.ParseExpr, "expected a property name after '.'")
			if !ok {
				return ast.NoExprID, false
			}
			span := source.Merge(p.prog.Exprs.Get(expr).Span, name.Span)
			expr = p.prog.Exprs.NewProperty(span, expr, name.Text)
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			if !p.at(token.RParen) {
				for {
					arg, ok := p.parseExpr()
					if !ok {
						return ast.NoExprID, false
					}
					args = append(args, arg)
					if !p.at(token.Comma) {
						break
					}
					p.advance()
				}
			}
			closeTok, ok := p.expectClose(token.RParen, diag.ParseMissingRParen, ")", "expected ')' to close the call's argument list")
			if !ok {
				return ast.NoExprID, false
			}
			span := source.Merge(p.prog.Exprs.Get(expr).Span, closeTok.Span)
			expr = p.prog.Exprs.NewCall(span, expr, args)
		case token.LBracket:
			p.advance()
			index, ok := p.parseExpr()
			if !ok {
				return ast.NoExprID, false
			}
			closeTok, ok := p.expectClose(token.RBracket, diag.ParseMissingRBracket, "]", "expected ']' to close the index expression")
			if !ok {
				return ast.NoExprID, false
			}
			span := source.Merge(p.prog.Exprs.Get(expr).Span, closeTok.Span)
			expr = p.prog.Exprs.NewIndex(span, expr, index)
		default:
			return expr, true
		}
	}
}
