package ast

import "snask/internal/source"

// Program is the root node produced by parsing a single file, and also the
// shape the module resolver hands off to the semantic analyzer once every
// imported module has been flattened into one statement list.
type Program struct {
	File  source.FileID
	Exprs *Exprs
	Stmts *Stmts
	Body  []StmtID
}

// NewProgram allocates an empty Program backed by fresh expression and
// statement arenas sized for a file of roughly capHint tokens.
func NewProgram(file source.FileID, capHint uint) *Program {
	return &Program{
		File:  file,
		Exprs: NewExprs(capHint),
		Stmts: NewStmts(capHint),
		Body:  nil,
	}
}
