package lexer

import (
	"snask/internal/diag"
	"snask/internal/token"
)

// scanString reads a double-quoted literal through the matching closing
// quote. Per spec.md §4.D, escapes are not decoded at this layer — the
// parser receives the raw bytes between the quotes verbatim. A newline
// before the closing quote, or running off the end of the file, is an
// unterminated-string error.
func (lx *Lexer) scanString() token.Token {
	start := lx.here()
	lx.bump() // opening quote
	contentStartOff := lx.cur.Off

	for {
		if lx.cur.EOF() {
			sp := lx.spanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textFrom(contentStartOff, lx.cur.Off)}
		}
		switch lx.peek() {
		case '"':
			text := lx.textFrom(contentStartOff, lx.cur.Off)
			lx.bump() // closing quote
			return token.Token{Kind: token.StringLit, Span: lx.spanFrom(start), Text: text}
		case '\n', '\r':
			sp := lx.spanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.textFrom(contentStartOff, lx.cur.Off)}
		default:
			lx.bump()
		}
	}
}
