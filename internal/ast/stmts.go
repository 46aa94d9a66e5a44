package ast

import "snask/internal/source"

// Stmts owns every statement arena for a single parse.
type Stmts struct {
	Arena       *Arena[Stmt]
	Decls       *Arena[DeclData]
	Assigns     *Arena[AssignData]
	Prints      *Arena[PrintData]
	Inputs      *Arena[InputData]
	FuncDecls   *Arena[FuncDeclData]
	ClassDecls  *Arena[ClassDeclData]
	Returns     *Arena[ReturnData]
	Conditionals *Arena[ConditionalData]
	Loops       *Arena[LoopData]
	ListPushes  *Arena[ListPushData]
	DictSets    *Arena[DictSetData]
	Imports     *Arena[ImportData]
	FromImports *Arena[FromImportData]
	// ExprStmts holds each expression statement's child ExprID; the payload
	// is the single ExprID itself rather than a struct.
	ExprStmts *Arena[ExprID]
}

// NewStmts allocates a Stmts with capHint as the initial per-arena capacity.
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Stmts{
		Arena:        NewArena[Stmt](capHint),
		Decls:        NewArena[DeclData](capHint),
		Assigns:      NewArena[AssignData](capHint),
		Prints:       NewArena[PrintData](capHint),
		Inputs:       NewArena[InputData](capHint),
		FuncDecls:    NewArena[FuncDeclData](capHint),
		ClassDecls:   NewArena[ClassDeclData](capHint),
		Returns:      NewArena[ReturnData](capHint),
		Conditionals: NewArena[ConditionalData](capHint),
		Loops:        NewArena[LoopData](capHint),
		ListPushes:   NewArena[ListPushData](capHint),
		DictSets:     NewArena[DictSetData](capHint),
		Imports:      NewArena[ImportData](capHint),
		FromImports:  NewArena[FromImportData](capHint),
		ExprStmts:    NewArena[ExprID](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the statement with the given ID, or nil for NoStmtID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExprStmt creates an expression statement.
func (s *Stmts) NewExprStmt(span source.Span, expr ExprID) StmtID {
	payload := s.ExprStmts.Allocate(expr)
	return s.new(StmtExpr, span, PayloadID(payload))
}

// ExprStmt returns the wrapped expression, if id is a StmtExpr node.
func (s *Stmts) ExprStmt(id StmtID) (ExprID, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtExpr {
		return NoExprID, false
	}
	return *s.ExprStmts.Get(uint32(st.Payload)), true
}

// NewDecl creates a declaration statement.
func (s *Stmts) NewDecl(span source.Span, data DeclData) StmtID {
	payload := s.Decls.Allocate(data)
	return s.new(StmtDecl, span, PayloadID(payload))
}

// Decl returns the declaration payload for id, if id is a StmtDecl node.
func (s *Stmts) Decl(id StmtID) (*DeclData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtDecl {
		return nil, false
	}
	return s.Decls.Get(uint32(st.Payload)), true
}

// NewAssign creates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, data AssignData) StmtID {
	payload := s.Assigns.Allocate(data)
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment payload for id, if id is a StmtAssign node.
func (s *Stmts) Assign(id StmtID) (*AssignData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(st.Payload)), true
}

// NewPrint creates a print statement.
func (s *Stmts) NewPrint(span source.Span, args []ExprID) StmtID {
	payload := s.Prints.Allocate(PrintData{Args: append([]ExprID(nil), args...)})
	return s.new(StmtPrint, span, PayloadID(payload))
}

// Print returns the print payload for id, if id is a StmtPrint node.
func (s *Stmts) Print(id StmtID) (*PrintData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtPrint {
		return nil, false
	}
	return s.Prints.Get(uint32(st.Payload)), true
}

// NewInput creates an input statement.
func (s *Stmts) NewInput(span source.Span, data InputData) StmtID {
	payload := s.Inputs.Allocate(data)
	return s.new(StmtInput, span, PayloadID(payload))
}

// Input returns the input payload for id, if id is a StmtInput node.
func (s *Stmts) Input(id StmtID) (*InputData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtInput {
		return nil, false
	}
	return s.Inputs.Get(uint32(st.Payload)), true
}

// NewFuncDecl creates a function-declaration statement.
func (s *Stmts) NewFuncDecl(span source.Span, data FuncDeclData) StmtID {
	payload := s.FuncDecls.Allocate(data)
	return s.new(StmtFuncDecl, span, PayloadID(payload))
}

// FuncDecl returns the func-decl payload for id, if id is a StmtFuncDecl node.
func (s *Stmts) FuncDecl(id StmtID) (*FuncDeclData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFuncDecl {
		return nil, false
	}
	return s.FuncDecls.Get(uint32(st.Payload)), true
}

// NewClassDecl creates a class-declaration statement.
func (s *Stmts) NewClassDecl(span source.Span, data ClassDeclData) StmtID {
	payload := s.ClassDecls.Allocate(data)
	return s.new(StmtClassDecl, span, PayloadID(payload))
}

// ClassDecl returns the class-decl payload for id, if id is a StmtClassDecl node.
func (s *Stmts) ClassDecl(id StmtID) (*ClassDeclData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtClassDecl {
		return nil, false
	}
	return s.ClassDecls.Get(uint32(st.Payload)), true
}

// NewReturn creates a return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(ReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return payload for id, if id is a StmtReturn node.
func (s *Stmts) Return(id StmtID) (*ReturnData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(st.Payload)), true
}

// NewConditional creates a conditional statement (if/elif*/else?).
func (s *Stmts) NewConditional(span source.Span, data ConditionalData) StmtID {
	payload := s.Conditionals.Allocate(data)
	return s.new(StmtConditional, span, PayloadID(payload))
}

// Conditional returns the conditional payload for id, if id is a StmtConditional node.
func (s *Stmts) Conditional(id StmtID) (*ConditionalData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtConditional {
		return nil, false
	}
	return s.Conditionals.Get(uint32(st.Payload)), true
}

// NewLoop creates a loop statement (while or for-in).
func (s *Stmts) NewLoop(span source.Span, data LoopData) StmtID {
	payload := s.Loops.Allocate(data)
	return s.new(StmtLoop, span, PayloadID(payload))
}

// Loop returns the loop payload for id, if id is a StmtLoop node.
func (s *Stmts) Loop(id StmtID) (*LoopData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtLoop {
		return nil, false
	}
	return s.Loops.Get(uint32(st.Payload)), true
}

// NewListPush creates a list-push statement.
func (s *Stmts) NewListPush(span source.Span, data ListPushData) StmtID {
	payload := s.ListPushes.Allocate(data)
	return s.new(StmtListPush, span, PayloadID(payload))
}

// ListPush returns the list-push payload for id, if id is a StmtListPush node.
func (s *Stmts) ListPush(id StmtID) (*ListPushData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtListPush {
		return nil, false
	}
	return s.ListPushes.Get(uint32(st.Payload)), true
}

// NewDictSet creates a dict-set statement.
func (s *Stmts) NewDictSet(span source.Span, data DictSetData) StmtID {
	payload := s.DictSets.Allocate(data)
	return s.new(StmtDictSet, span, PayloadID(payload))
}

// DictSet returns the dict-set payload for id, if id is a StmtDictSet node.
func (s *Stmts) DictSet(id StmtID) (*DictSetData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtDictSet {
		return nil, false
	}
	return s.DictSets.Get(uint32(st.Payload)), true
}

// NewImport creates an import statement.
func (s *Stmts) NewImport(span source.Span, path string) StmtID {
	payload := s.Imports.Allocate(ImportData{Path: path})
	return s.new(StmtImport, span, PayloadID(payload))
}

// Import returns the import payload for id, if id is a StmtImport node.
func (s *Stmts) Import(id StmtID) (*ImportData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtImport {
		return nil, false
	}
	return s.Imports.Get(uint32(st.Payload)), true
}

// NewFromImport creates a from-import statement.
func (s *Stmts) NewFromImport(span source.Span, data FromImportData) StmtID {
	payload := s.FromImports.Allocate(data)
	return s.new(StmtFromImport, span, PayloadID(payload))
}

// FromImport returns the from-import payload for id, if id is a StmtFromImport node.
func (s *Stmts) FromImport(id StmtID) (*FromImportData, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != StmtFromImport {
		return nil, false
	}
	return s.FromImports.Get(uint32(st.Payload)), true
}
