package token

// keywords is the table-driven reserved-word lookup the lexer consults
// when scanning an identifier-shaped run of characters (spec.md §4.D step 4).
var keywords = map[string]Kind{
	"let":    KwLet,
	"mut":    KwMut,
	"const":  KwConst,
	"fun":    KwFun,
	"class":  KwClass,
	"self":   KwSelf,
	"return": KwReturn,
	"if":     KwIf,
	"elif":   KwElif,
	"else":   KwElse,
	"while":  KwWhile,
	"for":    KwFor,
	"in":     KwIn,
	"import": KwImport,
	"from":   KwFrom,
	"true":   KwTrue,
	"false":  KwFalse,
	"nil":    KwNil,
	"and":    KwAnd,
	"or":     KwOr,
	"not":    KwNot,
	"print":  KwPrint,
	"input":  KwInput,
	"list":   KwList,
	"dict":   KwDict,
}

// LookupKeyword reports the Kind for a reserved word, case-sensitively.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
