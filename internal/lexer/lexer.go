package lexer

import (
	"snask/internal/diag"
	"snask/internal/source"
	"snask/internal/token"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lex-level diagnostics (unterminated strings,
	// unknown characters, bad indentation). May be nil.
	Reporter diag.Reporter
}

// Lexer converts one file's content into a lazy stream of tokens,
// including synthesized INDENT/DEDENT/NEWLINE tokens.
//
// Per spec.md §4.D, state is: a character cursor, the current line/column,
// an indent stack that always starts at [0], a queue of pending tokens
// (used to drain multiple DEDENTs one at a time), and an at-start-of-line
// flag that starts true.
type Lexer struct {
	file *source.File
	cur  Cursor
	pos  source.Position

	opts Options

	indentStack   []int
	pending       []token.Token
	atStartOfLine bool
}

// New creates a Lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:          file,
		cur:           NewCursor(file),
		pos:           source.Position{Line: 1, Column: 1, Offset: 0},
		opts:          opts,
		indentStack:   []int{0},
		atStartOfLine: true,
	}
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewError(code, sp, msg))
	}
}

// bump consumes and returns the current byte, advancing line/column/offset
// bookkeeping in lock-step (spec.md §4.A: '\n' resets column, everything
// else advances it).
func (lx *Lexer) bump() byte {
	if lx.cur.EOF() {
		return 0
	}
	b := lx.cur.Bump()
	lx.pos = lx.pos.Advance(b)
	return b
}

func (lx *Lexer) peek() byte { return lx.cur.Peek() }

func (lx *Lexer) peekAt(n uint32) byte { return lx.cur.PeekAt(n) }

func (lx *Lexer) here() source.Position { return lx.pos }

func (lx *Lexer) spanFrom(start source.Position) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.pos}
}

func (lx *Lexer) textFrom(startOff, endOff uint32) string {
	return string(lx.file.Content[startOff:endOff])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Single(lx.file.ID, lx.pos)
}

// Next returns the next significant token. After EOF it always returns EOF.
// The parser is responsible for its own current/peek lookahead (spec.md
// §4.E); Next has no buffering of its own beyond the pending DEDENT queue.
func (lx *Lexer) Next() token.Token {
	if len(lx.pending) > 0 {
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]
		return tok
	}

	if lx.atStartOfLine {
		if tok, produced := lx.handleLineStart(); produced {
			return tok
		}
	}

	lx.skipInlineWhitespace()

	if lx.cur.EOF() {
		return lx.handleEOF()
	}

	ch := lx.peek()
	switch {
	case ch == '\n' || ch == '\r':
		return lx.scanNewline()
	case isAlpha(ch) || ch == '_':
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperator()
	}
}

// handleLineStart measures leading indentation, emits INDENT/DEDENT as
// needed, and reports on mismatched dedents. It returns (token, true) when
// it produced a token directly (an emitted INDENT or a queued DEDENT), or
// (zero, false) once the flag is cleared and scanning should continue on
// the same call.
func (lx *Lexer) handleLineStart() (token.Token, bool) {
	for {
		width, blank := lx.measureIndent()
		if blank {
			continue
		}
		lx.atStartOfLine = false

		top := lx.indentStack[len(lx.indentStack)-1]
		switch {
		case width > top:
			lx.indentStack = append(lx.indentStack, width)
			return token.Token{Kind: token.INDENT, Span: lx.emptySpan()}, true
		case width < top:
			for len(lx.indentStack) > 0 && lx.indentStack[len(lx.indentStack)-1] > width {
				lx.indentStack = lx.indentStack[:len(lx.indentStack)-1]
				lx.pending = append(lx.pending, token.Token{Kind: token.DEDENT, Span: lx.emptySpan()})
			}
			if len(lx.indentStack) == 0 || lx.indentStack[len(lx.indentStack)-1] != width {
				lx.indentStack = append(lx.indentStack, width)
				lx.report(diag.ParseIndent, lx.emptySpan(), "inconsistent dedent: indentation does not match any enclosing level")
			}
			tok := lx.pending[0]
			lx.pending = lx.pending[1:]
			return tok, true
		default:
			return token.Token{}, false
		}
	}
}

// measureIndent counts leading indentation width for the current line
// (1 per space, 4 per tab — spec.md §6), skipping the line entirely (and
// reporting blank=true) when it is blank or a comment-only line.
func (lx *Lexer) measureIndent() (width int, blank bool) {
	for {
		switch lx.peek() {
		case ' ':
			lx.bump()
			width++
		case '\t':
			lx.bump()
			width += 4
		default:
			goto doneCounting
		}
	}
doneCounting:
	switch {
	case lx.cur.EOF():
		return 0, false
	case lx.peek() == '\n' || lx.peek() == '\r':
		lx.consumeEOL()
		return 0, true
	case lx.peek() == '/' && lx.peekAt(1) == '/':
		lx.skipLineComment()
		if lx.peek() == '\n' || lx.peek() == '\r' {
			lx.consumeEOL()
		}
		return 0, true
	default:
		return width, false
	}
}

func (lx *Lexer) consumeEOL() {
	if lx.peek() == '\r' {
		lx.bump()
	}
	if lx.peek() == '\n' {
		lx.bump()
	}
}

func (lx *Lexer) skipLineComment() {
	for !lx.cur.EOF() && lx.peek() != '\n' && lx.peek() != '\r' {
		lx.bump()
	}
}

func (lx *Lexer) skipInlineWhitespace() {
	for {
		switch lx.peek() {
		case ' ', '\t', '\r':
			lx.bump()
		case '/':
			if lx.peekAt(1) == '/' {
				lx.skipLineComment()
				continue
			}
			return
		default:
			return
		}
	}
}

func (lx *Lexer) scanNewline() token.Token {
	start := lx.here()
	if lx.peek() == '\r' {
		lx.bump()
	}
	if lx.peek() == '\n' {
		lx.bump()
	}
	lx.atStartOfLine = true
	return token.Token{Kind: token.NEWLINE, Span: lx.spanFrom(start)}
}

func (lx *Lexer) handleEOF() token.Token {
	if len(lx.indentStack) > 1 {
		lx.indentStack = lx.indentStack[:len(lx.indentStack)-1]
		return token.Token{Kind: token.DEDENT, Span: lx.emptySpan()}
	}
	return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
