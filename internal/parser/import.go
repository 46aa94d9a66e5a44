package parser

import (
	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

// parseImport parses `import "path";`.
func (p *Parser) parseImport() (ast.StmtID, bool) {
	kw := p.advance()
	pathTok, ok := p.expect(token.StringLit, diag.ParseExpr, "expected a string path after 'import'")
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the import statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.prog.Stmts.NewImport(source.Merge(kw.Span, semi.Span), pathTok.Text), true
}

// parseFromImport parses `from seg/seg/ import module;` or the
// current-directory form `from / import module;` (IsCurrentDir, spec.md
// §4.F). Segments are bare identifiers separated by '/'.
func (p *Parser) parseFromImport() (ast.StmtID, bool) {
	kw := p.advance()

	var segments []string
	isCurrentDir := false
	if p.at(token.Slash) {
		p.advance()
		isCurrentDir = true
	} else {
		for p.at(token.Ident) {
			seg := p.advance()
			segments = append(segments, seg.Text)
			if _, ok := p.expect(token.Slash, diag.ParseExpr, "expected '/' after a from-import path segment"); !ok {
				return ast.NoStmtID, false
			}
		}
	}

	if _, ok := p.expect(token.KwImport, diag.ParseExpr, "expected 'import' after the from-import path"); !ok {
		return ast.NoStmtID, false
	}
	module, ok := p.expect(token.Ident, diag.ParseExpr, "expected a module name after 'import'")
	if !ok {
		return ast.NoStmtID, false
	}
	semi, ok := p.expectSemicolon("expected ';' to terminate the from-import statement")
	if !ok {
		return ast.NoStmtID, false
	}
	return p.prog.Stmts.NewFromImport(source.Merge(kw.Span, semi.Span), ast.FromImportData{
		Segments:     segments,
		IsCurrentDir: isCurrentDir,
		Module:       module.Text,
	}), true
}
