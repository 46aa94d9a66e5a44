package diag

// Code is a stable, human-readable diagnostic identifier. Codes are never
// reused for a different meaning across versions (spec.md §6).
type Code string

// Parse error codes. The parser never recovers; it returns the first of
// these it hits, with a precise span.
const (
	ParseExpr              Code = "SNASK-PARSE-EXPR"
	ParseSemicolon         Code = "SNASK-PARSE-SEMICOLON"
	ParseMissingRParen     Code = "SNASK-PARSE-MISSING-RPAREN"
	ParseMissingRBracket   Code = "SNASK-PARSE-MISSING-RBRACKET"
	ParseMissingRBrace     Code = "SNASK-PARSE-MISSING-RBRACE"
	ParseIndent            Code = "SNASK-PARSE-INDENT"
	ParseUnterminatedBang  Code = "SNASK-PARSE-BANG"
)

// Lexer error codes, surfaced as parse errors to the embedder (the lexer
// has no separate error channel of its own in spec.md).
const (
	LexUnterminatedString Code = "SNASK-LEX-UNTERMINATED-STRING"
	LexUnknownChar        Code = "SNASK-LEX-UNKNOWN-CHAR"
)

// Semantic error codes, accumulated (not fatal) during analysis.
const (
	SemVarNotFound          Code = "SNASK-SEM-VAR-NOT-FOUND"
	SemFuncNotFound         Code = "SNASK-SEM-FUNC-NOT-FOUND"
	SemVarRedecl            Code = "SNASK-SEM-VAR-REDECL"
	SemFuncRedecl           Code = "SNASK-SEM-FUNC-REDECL"
	SemImmutableAssign      Code = "SNASK-SEM-IMMUTABLE-ASSIGN"
	SemTypeMismatch         Code = "SNASK-SEM-TYPE-MISMATCH"
	SemInvalidOperation     Code = "SNASK-SEM-INVALID-OPERATION"
	SemWrongArity           Code = "SNASK-SEM-WRONG-ARITY"
	SemNotCallable          Code = "SNASK-SEM-NOT-CALLABLE"
	SemIndexOnNonIndexable  Code = "SNASK-SEM-INDEX-ON-NON-INDEXABLE"
	SemInvalidIndexType     Code = "SNASK-SEM-INVALID-INDEX-TYPE"
	SemPropertyNotFound     Code = "SNASK-SEM-PROPERTY-NOT-FOUND"
	SemReturnOutsideFunc    Code = "SNASK-SEM-RETURN-OUTSIDE-FUNCTION"
	SemInvalidCondition     Code = "SNASK-SEM-INVALID-CONDITION"
)

// Resolver error codes.
const (
	ResolveModuleNotFound Code = "SNASK-RESOLVE-MODULE-NOT-FOUND"
	ResolveCycle          Code = "SNASK-RESOLVE-CYCLE"
)
