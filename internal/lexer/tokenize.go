package lexer

import "snask/internal/token"

// TokenizeAll drains lx into a slice, including the trailing EOF token.
// Used by tooling (e.g. semantic-token colorizers, per spec.md §6) that
// wants the whole stream rather than pulling tokens one at a time.
func TokenizeAll(lx *Lexer) []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}
