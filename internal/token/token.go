package token

import "snask/internal/source"

// Token is a single lexical unit with its source span and decoded payload.
//
// Number holds the parsed f64 value for NumberLit tokens; Text holds the
// identifier name, decoded string contents, or (for punctuation/keywords)
// the literal spelling. Virtual tokens (INDENT/DEDENT/NEWLINE/EOF) carry an
// empty Text.
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string
	Number float64
}

// IsLiteral reports whether the token is a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// String renders the token kind and, for identifiers/literals, its text —
// primarily useful in parser error messages and tests.
func (t Token) String() string {
	switch t.Kind {
	case Ident, NumberLit, StringLit:
		return t.Text
	default:
		return t.Kind.String()
	}
}
