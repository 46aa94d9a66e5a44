package ast

import "snask/internal/source"

// ExprKind enumerates the shapes an expression node can take (spec.md §3).
type ExprKind uint8

const (
	ExprLiteral ExprKind = iota
	ExprVariable
	ExprUnary
	ExprBinary
	ExprCall
	ExprProperty
	ExprIndex
)

func (k ExprKind) String() string {
	switch k {
	case ExprLiteral:
		return "literal"
	case ExprVariable:
		return "variable"
	case ExprUnary:
		return "unary"
	case ExprBinary:
		return "binary"
	case ExprCall:
		return "call"
	case ExprProperty:
		return "property"
	case ExprIndex:
		return "index"
	default:
		return "unknown"
	}
}

// LiteralKind distinguishes the shapes a literal expression's payload holds.
type LiteralKind uint8

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBool
	LiteralNil
	LiteralList
	LiteralDict
)

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota // -x
	UnaryNot                // not x
)

// BinaryOp enumerates infix operators.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryEq
	BinaryNotEq
	BinaryLt
	BinaryGt
	BinaryLtEq
	BinaryGtEq
	BinaryAnd
	BinaryOr
)

// Expr is a tagged expression node; Payload indexes into the Exprs arena
// matching Kind.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// LiteralData is the payload for ExprLiteral nodes. Only the fields matching
// Kind are meaningful (Keys and Values together for LiteralDict).
type LiteralData struct {
	Kind    LiteralKind
	Number  float64
	Text    string  // LiteralString
	Bool    bool    // LiteralBool
	Items   []ExprID // LiteralList elements
	Keys    []ExprID // LiteralDict keys, parallel to Values
	Values  []ExprID // LiteralDict values, parallel to Keys
}

// VariableData is the payload for ExprVariable nodes. Name is the resolved
// identifier text; for a qualified reference ("a::b") it is the full
// "a::b" string produced by the parser (spec.md §4.E).
type VariableData struct {
	Name string
}

// UnaryData is the payload for ExprUnary nodes.
type UnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

// BinaryData is the payload for ExprBinary nodes.
type BinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// CallData is the payload for ExprCall nodes.
type CallData struct {
	Callee ExprID
	Args   []ExprID
}

// PropertyData is the payload for ExprProperty nodes (obj.field).
type PropertyData struct {
	Target ExprID
	Name   string
}

// IndexData is the payload for ExprIndex nodes (obj[idx]).
type IndexData struct {
	Target ExprID
	Index  ExprID
}
