package parser

import (
	"snask/internal/ast"
	"snask/internal/source"
	"snask/internal/token"
)

// parseStatement implements the statement dispatch table in spec.md §4.E.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	switch {
	case p.at(token.Ident) && p.peekAt(token.Assign):
		return p.parseAssignment()
	case p.atOr(token.KwLet, token.KwMut, token.KwConst, token.KwList, token.KwDict):
		return p.parseDeclaration()
	case p.at(token.KwPrint):
		return p.parsePrint()
	case p.at(token.KwInput):
		return p.parseInput()
	case p.at(token.KwIf):
		return p.parseConditional()
	case p.at(token.KwWhile):
		return p.parseWhile()
	case p.at(token.KwFor):
		return p.parseFor()
	case p.at(token.KwFun):
		return p.parseFuncDecl()
	case p.at(token.KwClass):
		return p.parseClassDecl()
	case p.at(token.KwReturn):
		return p.parseReturn()
	case p.at(token.KwImport):
		return p.parseImport()
	case p.at(token.KwFrom):
		return p.parseFromImport()
	default:
		return p.parseExprOrCallStatement()
	}
}

// parseExprOrCallStatement implements the fallback branch of §4.E: parse an
// expression; a `name.push(v)` / `name.set(k, v)` call at the top becomes a
// list-push/dict-set statement, anything else (an ordinary call included) a
// plain expression statement. Terminator `;`.
func (p *Parser) parseExprOrCallStatement() (ast.StmtID, bool) {
	start := p.cur.Span
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the statement")
	if !ok {
		return ast.NoStmtID, false
	}
	span := source.Merge(start, semi.Span)

	if stmt, handled := p.tryBuiltinMethodStatement(span, expr); handled {
		return stmt, true
	}
	return p.prog.Stmts.NewExprStmt(span, expr), true
}

// tryBuiltinMethodStatement recognizes `name.push(value);` and
// `name.set(key, value);` shapes and rewrites them into the dedicated
// list-push / dict-set statement kinds spec.md §3 describes, rather than a
// generic call. Any other call, or a push/set on a non-bare-variable
// target, falls back to an ordinary expression statement.
func (p *Parser) tryBuiltinMethodStatement(span source.Span, expr ast.ExprID) (ast.StmtID, bool) {
	call, ok := p.prog.Exprs.Call(expr)
	if !ok {
		return ast.NoStmtID, false
	}
	prop, ok := p.prog.Exprs.Property(call.Callee)
	if !ok {
		return ast.NoStmtID, false
	}
	target, ok := p.prog.Exprs.Variable(prop.Target)
	if !ok {
		return ast.NoStmtID, false
	}
	switch {
	case prop.Name == "push" && len(call.Args) == 1:
		return p.prog.Stmts.NewListPush(span, ast.ListPushData{Name: target.Name, Value: call.Args[0]}), true
	case prop.Name == "set" && len(call.Args) == 2:
		return p.prog.Stmts.NewDictSet(span, ast.DictSetData{Name: target.Name, Key: call.Args[0], Value: call.Args[1]}), true
	default:
		return ast.NoStmtID, false
	}
}
