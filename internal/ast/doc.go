// Package ast defines the tagged expression and statement nodes produced by
// the parser. Expr and Stmt are pure tagged unions: a Kind plus a Payload
// index into the per-kind arena on Exprs/Stmts. There is no inheritance and
// no virtual dispatch across node kinds; consumers exhaustively switch on
// Kind.
package ast
