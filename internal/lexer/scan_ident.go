package lexer

import (
	"golang.org/x/text/unicode/norm"

	"snask/internal/token"
)

func isIdentCont(b byte) bool {
	return isAlpha(b) || isDigit(b) || b == '_'
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.here()
	startOff := lx.cur.Off
	for isIdentCont(lx.peek()) {
		lx.bump()
	}
	raw := lx.textFrom(startOff, lx.cur.Off)
	// Normalize to NFC so that two Unicode-equivalent spellings of the
	// same identifier always compare equal in the symbol table.
	text := norm.NFC.String(raw)

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: lx.spanFrom(start), Text: text}
	}
	return token.Token{Kind: token.Ident, Span: lx.spanFrom(start), Text: text}
}
