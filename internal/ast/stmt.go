package ast

import "snask/internal/source"

// StmtKind enumerates the statement shapes produced by the parser (spec.md §3).
type StmtKind uint8

const (
	StmtExpr StmtKind = iota
	StmtDecl
	StmtAssign
	StmtPrint
	StmtInput
	StmtFuncDecl
	StmtClassDecl
	StmtReturn
	StmtConditional
	StmtLoop
	StmtListPush
	StmtDictSet
	StmtImport
	StmtFromImport
)

func (k StmtKind) String() string {
	switch k {
	case StmtExpr:
		return "expr"
	case StmtDecl:
		return "decl"
	case StmtAssign:
		return "assign"
	case StmtPrint:
		return "print"
	case StmtInput:
		return "input"
	case StmtFuncDecl:
		return "func-decl"
	case StmtClassDecl:
		return "class-decl"
	case StmtReturn:
		return "return"
	case StmtConditional:
		return "conditional"
	case StmtLoop:
		return "loop"
	case StmtListPush:
		return "list-push"
	case StmtDictSet:
		return "dict-set"
	case StmtImport:
		return "import"
	case StmtFromImport:
		return "from-import"
	default:
		return "unknown"
	}
}

// DeclKind distinguishes the binding forms a StmtDecl node can introduce.
type DeclKind uint8

const (
	DeclLet DeclKind = iota
	DeclMut
	DeclConst
	DeclList
	DeclDict
)

// LoopKind distinguishes while-loops from for-in loops.
type LoopKind uint8

const (
	LoopWhile LoopKind = iota
	LoopForIn
)

// TypeAnnotation is the parser's view of a type name written in source; the
// semantic analyzer resolves Name to a types.Kind.
type TypeAnnotation struct {
	Name string
	Span source.Span
}

// FuncParam is a single (name, optional type) parameter in a func-decl.
type FuncParam struct {
	Name string
	Type *TypeAnnotation // nil when untyped
	Span source.Span
}

// Stmt is a tagged statement node; Payload indexes into the Stmts arena
// matching Kind (StmtImport's path text, for instance, lives in the Imports
// arena).
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// DeclData is the payload for StmtDecl nodes.
type DeclData struct {
	Kind        DeclKind
	Name        string
	Annotation  *TypeAnnotation // nil when no annotation was written
	Initializer ExprID
}

// AssignData is the payload for StmtAssign nodes.
type AssignData struct {
	Name  string
	Value ExprID
}

// PrintData is the payload for StmtPrint nodes.
type PrintData struct {
	Args []ExprID
}

// InputData is the payload for StmtInput nodes.
type InputData struct {
	Name       string
	Annotation TypeAnnotation
}

// FuncDeclData is the payload for StmtFuncDecl nodes.
type FuncDeclData struct {
	Name       string
	Params     []FuncParam
	ReturnType *TypeAnnotation // nil when untyped (Void)
	Body       []StmtID
}

// ClassDeclData is the payload for StmtClassDecl nodes.
type ClassDeclData struct {
	Name       string
	Properties []StmtID // each a StmtDecl
	Methods    []StmtID // each a StmtFuncDecl
}

// ReturnData is the payload for StmtReturn nodes.
type ReturnData struct {
	Value ExprID // NoExprID for a bare `return;`
}

// CondBranch is one `cond` + body pair: the `if` itself or a chained `elif`.
type CondBranch struct {
	Cond ExprID
	Body []StmtID
	Span source.Span
}

// ConditionalData is the payload for StmtConditional nodes.
type ConditionalData struct {
	If    CondBranch
	Elifs []CondBranch
	Else  []StmtID // nil when absent
}

// LoopData is the payload for StmtLoop nodes.
type LoopData struct {
	Kind LoopKind
	// While
	Cond ExprID
	// ForIn
	Iterator string
	Iterable ExprID
	Body     []StmtID
}

// ListPushData is the payload for StmtListPush nodes.
type ListPushData struct {
	Name  string
	Value ExprID
}

// DictSetData is the payload for StmtDictSet nodes.
type DictSetData struct {
	Name  string
	Key   ExprID
	Value ExprID
}

// ImportData is the payload for StmtImport nodes.
type ImportData struct {
	Path string
}

// FromImportData is the payload for StmtFromImport nodes.
type FromImportData struct {
	Segments    []string
	IsCurrentDir bool
	Module      string
}
