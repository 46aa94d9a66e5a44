package sema

import "snask/internal/symbols"

// SemanticSymbolTable is the scoped name table spec.md §4.I calls for: "a
// SemanticSymbolTable (fresh, enters global scope automatically)... On
// construction, the built-in environment is registered into globals." It is
// a thin wrapper: internal/symbols.Table already does the scoping work;
// this type exists to give the analyzer's own vocabulary a name distinct
// from the general-purpose table other stages could reuse.
type SemanticSymbolTable struct {
	*symbols.Table
}
