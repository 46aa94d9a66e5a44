package dialect

import "strings"

type keywordSignal struct {
	Dialect Kind
	Score   int
	Reason  string
}

// keywordSignals maps an identifier spelling that is NOT a Snask keyword to
// the foreign dialects it suggests. None of these collide with
// token.LookupKeyword's table; a Snask program can legally reference any of
// them as a plain variable, which is exactly when the hint is useful (the
// name resolves to nothing, and it looks like the user meant something
// else).
var keywordSignals = map[string][]keywordSignal{
	// Rust-ish
	"impl":        {{Dialect: Rust, Score: 6, Reason: "rust keyword `impl`"}},
	"trait":       {{Dialect: Rust, Score: 6, Reason: "rust keyword `trait`"}},
	"macro_rules": {{Dialect: Rust, Score: 5, Reason: "rust macro_rules syntax"}},
	"crate":       {{Dialect: Rust, Score: 5, Reason: "rust keyword `crate`"}},
	"struct":      {{Dialect: Rust, Score: 3, Reason: "rust keyword `struct`"}},
	"match":       {{Dialect: Rust, Score: 4, Reason: "rust keyword `match`"}},
	"dyn":         {{Dialect: Rust, Score: 4, Reason: "rust keyword `dyn`"}},

	// Go-ish
	"func":      {{Dialect: Go, Score: 6, Reason: "go keyword `func`"}},
	"defer":     {{Dialect: Go, Score: 5, Reason: "go keyword `defer`"}},
	"chan":      {{Dialect: Go, Score: 4, Reason: "go keyword `chan`"}},
	"package":   {{Dialect: Go, Score: 4, Reason: "go keyword `package`"}},
	"select":    {{Dialect: Go, Score: 3, Reason: "go keyword `select`"}},
	"go":        {{Dialect: Go, Score: 2, Reason: "go keyword `go`"}},
	"interface": {{Dialect: Go, Score: 1, Reason: "go keyword `interface`"}, {Dialect: TypeScript, Score: 1, Reason: "typescript keyword `interface`"}},

	// TypeScript-ish
	"implements": {{Dialect: TypeScript, Score: 4, Reason: "typescript keyword `implements`"}},
	"extends":    {{Dialect: TypeScript, Score: 4, Reason: "typescript keyword `extends`"}},
	"namespace":  {{Dialect: TypeScript, Score: 4, Reason: "typescript keyword `namespace`"}},
	"readonly":   {{Dialect: TypeScript, Score: 3, Reason: "typescript keyword `readonly`"}},
	"undefined":  {{Dialect: TypeScript, Score: 3, Reason: "typescript/javascript `undefined`"}},

	// Python-ish
	"None": {{Dialect: Python, Score: 5, Reason: "python `None`"}},
	"def":  {{Dialect: Python, Score: 4, Reason: "python keyword `def`"}},
	"pass": {{Dialect: Python, Score: 2, Reason: "python keyword `pass`"}},
}

// RecordIdent records keyword evidence for a single identifier name, trying
// an exact match and a lowercased fallback for keyword-like spellings.
func RecordIdent(e *Evidence, ident string) {
	if e == nil || ident == "" {
		return
	}
	recordIdentKey(e, ident)
	if lower := strings.ToLower(ident); lower != ident {
		recordIdentKey(e, lower)
	}
}

func recordIdentKey(e *Evidence, ident string) {
	for _, sig := range keywordSignals[ident] {
		e.Add(Hint{Dialect: sig.Dialect, Score: sig.Score, Reason: sig.Reason, Name: ident})
	}
}
