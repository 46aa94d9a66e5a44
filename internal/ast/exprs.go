package ast

import "snask/internal/source"

// Exprs owns every expression arena for a single parse. Node construction
// always goes through the New* helpers so Expr.Payload and the matching
// per-kind arena stay in sync.
type Exprs struct {
	Arena      *Arena[Expr]
	Literals   *Arena[LiteralData]
	Variables  *Arena[VariableData]
	Unaries    *Arena[UnaryData]
	Binaries   *Arena[BinaryData]
	Calls      *Arena[CallData]
	Properties *Arena[PropertyData]
	Indices    *Arena[IndexData]
}

// NewExprs allocates an Exprs with capHint as the initial per-arena capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Exprs{
		Arena:      NewArena[Expr](capHint),
		Literals:   NewArena[LiteralData](capHint),
		Variables:  NewArena[VariableData](capHint),
		Unaries:    NewArena[UnaryData](capHint),
		Binaries:   NewArena[BinaryData](capHint),
		Calls:      NewArena[CallData](capHint),
		Properties: NewArena[PropertyData](capHint),
		Indices:    NewArena[IndexData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the expression with the given ID, or nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewLiteral creates a literal expression.
func (e *Exprs) NewLiteral(span source.Span, data LiteralData) ExprID {
	payload := e.Literals.Allocate(data)
	return e.new(ExprLiteral, span, PayloadID(payload))
}

// Literal returns the literal payload for id, if id is an ExprLiteral node.
func (e *Exprs) Literal(id ExprID) (*LiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLiteral {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewVariable creates a variable-reference expression.
func (e *Exprs) NewVariable(span source.Span, name string) ExprID {
	payload := e.Variables.Allocate(VariableData{Name: name})
	return e.new(ExprVariable, span, PayloadID(payload))
}

// Variable returns the variable payload for id, if id is an ExprVariable node.
func (e *Exprs) Variable(id ExprID) (*VariableData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprVariable {
		return nil, false
	}
	return e.Variables.Get(uint32(expr.Payload)), true
}

// NewUnary creates a unary expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(UnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary payload for id, if id is an ExprUnary node.
func (e *Exprs) Unary(id ExprID) (*UnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(BinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary payload for id, if id is an ExprBinary node.
func (e *Exprs) Binary(id ExprID) (*BinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(CallData{Callee: callee, Args: append([]ExprID(nil), args...)})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call payload for id, if id is an ExprCall node.
func (e *Exprs) Call(id ExprID) (*CallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewProperty creates a property-access expression (target.name).
func (e *Exprs) NewProperty(span source.Span, target ExprID, name string) ExprID {
	payload := e.Properties.Allocate(PropertyData{Target: target, Name: name})
	return e.new(ExprProperty, span, PayloadID(payload))
}

// Property returns the property payload for id, if id is an ExprProperty node.
func (e *Exprs) Property(id ExprID) (*PropertyData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprProperty {
		return nil, false
	}
	return e.Properties.Get(uint32(expr.Payload)), true
}

// NewIndex creates an index-access expression (target[index]).
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(IndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index payload for id, if id is an ExprIndex node.
func (e *Exprs) Index(id ExprID) (*IndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}
