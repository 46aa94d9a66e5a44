package parser

import (
	"snask/internal/ast"
	"snask/internal/source"
	"snask/internal/token"
)

// Precedence levels, low to high (spec.md §4.E). Assignment sits below
// every binary level but is never reached from parseExpr: the statement
// dispatcher consumes `ident =` before an expression parse ever starts
// (spec.md §4.E tie-break: "Assignment only valid as a top-level
// statement, never inside an expression").
//
// Logical `and`/`or` have no explicit slot in spec.md's precedence ladder
// (an acknowledged Open Question: the tokens are reserved but the ladder
// predates giving them operators). Resolved by placing them just above
// Assignment, the conventional slot for logical combinators, and lower
// than every comparison/arithmetic level.
const (
	precAssignment = iota
	precLogicalOr
	precLogicalAnd
	precEquality
	precComparison
	precTerm
	precFactor
)

func binaryPrec(k token.Kind) (int, bool) {
	switch k {
	case token.KwOr:
		return precLogicalOr, true
	case token.KwAnd:
		return precLogicalAnd, true
	case token.EqEq, token.BangEq:
		return precEquality, true
	case token.Lt, token.Gt, token.LtEq, token.GtEq:
		return precComparison, true
	case token.Plus, token.Minus:
		return precTerm, true
	case token.Star, token.Slash:
		return precFactor, true
	default:
		return 0, false
	}
}

func binaryOpFor(k token.Kind) ast.BinaryOp {
	switch k {
	case token.KwOr:
		return ast.BinaryOr
	case token.KwAnd:
		return ast.BinaryAnd
	case token.EqEq:
		return ast.BinaryEq
	case token.BangEq:
		return ast.BinaryNotEq
	case token.Lt:
		return ast.BinaryLt
	case token.Gt:
		return ast.BinaryGt
	case token.LtEq:
		return ast.BinaryLtEq
	case token.GtEq:
		return ast.BinaryGtEq
	case token.Plus:
		return ast.BinaryAdd
	case token.Minus:
		return ast.BinarySub
	case token.Star:
		return ast.BinaryMul
	default:
		return ast.BinaryDiv
	}
}

// parseExpr is the entry point for expression parsing: precedence climbing
// starting just above Assignment.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(precLogicalOr)
}

// parseBinary implements Pratt-style precedence climbing. All binary
// operators here are left-associative: the recursive call binds at prec+1
// so a same-precedence operator to the right does not get absorbed into
// the right-hand operand.
func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		prec, isBinary := binaryPrec(p.cur.Kind)
		if !isBinary || prec < minPrec {
			return left, true
		}
		op := p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}
		span := source.Merge(p.prog.Exprs.Get(left).Span, p.prog.Exprs.Get(right).Span)
		left = p.prog.Exprs.NewBinary(span, binaryOpFor(op.Kind), left, right)
	}
}
