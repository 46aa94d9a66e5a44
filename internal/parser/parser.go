// Package parser implements a Pratt-style precedence-climbing parser that
// turns a token stream into an AST (spec.md §4.E). The parser does not
// recover from errors: the first hard error is reported and parsing stops,
// returning ok=false all the way up to ParseProgram.
package parser

import (
	"fmt"

	"snask/internal/ast"
	"snask/internal/diag"
	"snask/internal/hyper"
	"snask/internal/lexer"
	"snask/internal/source"
	"snask/internal/token"
)

// Options configures a Parser.
type Options struct {
	// Reporter receives the first parse error, if any. May be nil.
	Reporter diag.Reporter
}

// Parser holds per-file parsing state: current_token and peek_token
// (spec.md §4.E's single lookahead) pulled from the lexer, and the arenas
// new nodes are allocated into.
type Parser struct {
	lx   *lexer.Lexer
	prog *ast.Program
	opts Options

	cur, peek token.Token

	lastSpan source.Span
	failed   bool

	// nextExprCause, when non-empty, names why the next "expected an
	// expression" failure in parseExpr happened (e.g. a trailing '=' with
	// no initializer). Consumed and cleared by the next expression parse,
	// successful or not, so it never leaks onto an unrelated failure.
	nextExprCause string
}

// New creates a Parser over file, backed by a fresh lexer.
func New(file *source.File, opts Options) *Parser {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	p := &Parser{
		lx:   lx,
		prog: ast.NewProgram(file.ID, 0),
		opts: opts,
	}
	p.cur = p.lx.Next()
	p.peek = p.lx.Next()
	return p
}

// ParseProgram parses file's full top-level statement list. ok is false
// once a hard parse error has been reported; the returned Program holds
// whatever was parsed before the failure.
func ParseProgram(file *source.File, opts Options) (*ast.Program, bool) {
	p := New(file, opts)
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, bool) {
	p.skipBlankLines()
	for !p.at(token.EOF) && !p.failed {
		stmt, ok := p.parseStatement()
		if !ok {
			break
		}
		p.prog.Body = append(p.prog.Body, stmt)
		p.skipBlankLines()
	}
	return p.prog, !p.failed
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) peekAt(k token.Kind) bool {
	return p.peek.Kind == k
}

// advance consumes and returns the current token, remembering its span so
// later diagnostics about "expected X here" can point just past it, then
// shifts the lookahead window forward by one.
func (p *Parser) advance() token.Token {
	tok := p.cur
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	p.cur = p.peek
	p.peek = p.lx.Next()
	return tok
}

func (p *Parser) skipBlankLines() {
	for p.at(token.NEWLINE) {
		p.advance()
	}
}

// expect consumes the current token if it matches k, else reports code/msg
// at the current position and marks the parse as failed.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.fail(code, p.errorSpan(), msg)
	return token.Token{Kind: token.Invalid}, false
}

// errorSpan returns the best span to anchor a diagnostic at: the next
// token's span, or a zero-length span just past the last consumed token
// when the next token is EOF.
func (p *Parser) errorSpan() source.Span {
	if p.cur.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return p.cur.Span
}

// fail reports a diagnostic and marks the parse as permanently failed; the
// parser never recovers from a hard error (spec.md §4.E).
func (p *Parser) fail(code diag.Code, sp source.Span, msg string) {
	p.failDiagnostic(diag.NewError(code, sp, msg))
}

// failDiagnostic reports an already-built diagnostic (e.g. one already
// promoted through the hyper layer) and marks the parse as permanently
// failed.
func (p *Parser) failDiagnostic(d *diag.Diagnostic) {
	if p.failed {
		return
	}
	p.failed = true
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(d)
	}
}

// failExpr reports an "expected an expression" failure, promoting it
// through the hyper layer with a cause when a caller flagged why a value
// was expected here — spec.md §8's boundary case: a trailing '=' with no
// initializer surfaces SNASK-PARSE-EXPR with a cause "missing value".
func (p *Parser) failExpr(sp source.Span, msg string) {
	d := diag.NewError(diag.ParseExpr, sp, msg)
	if p.nextExprCause != "" {
		h := hyper.New(d).WithCause(hyper.Cause{Title: p.nextExprCause, Confidence: 80})
		d = hyper.Promote(h, nil)
	}
	p.nextExprCause = ""
	p.failDiagnostic(d)
}

// expectSemicolon consumes a terminating ';' or reports a ParseSemicolon
// diagnostic promoted through the hyper layer: a confidence-95 "Insert
// ';'" fixit crosses QuickFixThreshold and renders as help (spec.md §8
// scenario 3, "Missing semicolon quickfix").
func (p *Parser) expectSemicolon(msg string) (token.Token, bool) {
	if p.at(token.Semicolon) {
		return p.advance(), true
	}
	d := diag.NewError(diag.ParseSemicolon, p.errorSpan(), msg)
	h := hyper.New(d).WithFixit(hyper.Fixit{Title: "Insert ';'", Confidence: 95, Kind: hyper.QuickFix, ApplyHint: ";"})
	p.failDiagnostic(hyper.Promote(h, nil))
	return token.Token{Kind: token.Invalid}, false
}

// expectClose consumes a closing delimiter or reports a ParseMissing*
// diagnostic promoted through the hyper layer with a fixit naming the
// exact character to insert (spec.md §3: "unclosed delimiter suggests the
// exact character to insert").
func (p *Parser) expectClose(k token.Kind, code diag.Code, closeChar, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	d := diag.NewError(code, p.errorSpan(), msg)
	h := hyper.New(d).WithFixit(hyper.Fixit{
		Title:      fmt.Sprintf("Insert '%s'", closeChar),
		Confidence: 85,
		Kind:       hyper.QuickFix,
		ApplyHint:  closeChar,
	})
	p.failDiagnostic(hyper.Promote(h, nil))
	return token.Token{Kind: token.Invalid}, false
}

// parseBlock implements the block grammar from spec.md §4.E: optional
// leading NEWLINE, then a required INDENT, then statements until DEDENT or
// EOF, then a consumed DEDENT.
func (p *Parser) parseBlock() ([]ast.StmtID, bool) {
	if p.at(token.NEWLINE) {
		p.advance()
	}
	if _, ok := p.expect(token.INDENT, diag.ParseIndent, "expected an indented block"); !ok {
		return nil, false
	}

	var body []ast.StmtID
	p.skipBlankLines()
	for !p.at(token.DEDENT) && !p.at(token.EOF) {
		stmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		body = append(body, stmt)
		p.skipBlankLines()
	}
	if _, ok := p.expect(token.DEDENT, diag.ParseIndent, "expected the block to close with a dedent"); !ok {
		return nil, false
	}
	return body, true
}
