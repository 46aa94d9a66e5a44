// Package lexer turns Snask source text into a token stream, synthesizing
// the virtual INDENT/DEDENT/NEWLINE tokens that make the language's block
// structure explicit to the parser (spec.md §4.D).
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"snask/internal/source"
)

// Cursor walks the byte content of a single file.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a cursor positioned at the start of f.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0}
}

func (c *Cursor) limit() uint32 {
	n, err := safecast.Conv[uint32](len(c.File.Content))
	if err != nil {
		panic(fmt.Errorf("file content length overflow: %w", err))
	}
	return n
}

// EOF reports whether the cursor has consumed all bytes.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.limit() {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Mark captures the current offset for later span construction.
type Mark uint32

// Mark returns a Mark at the cursor's current offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}
