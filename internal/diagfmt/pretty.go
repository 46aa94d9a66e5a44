// Package diagfmt renders a diag.Bag as human-readable text: a header line
// and a "-->" file:line:col line per diagnostic plus a caret-underlined
// source excerpt, in the style of
// rustc/go vet output.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"snask/internal/diag"
	"snask/internal/source"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Options configures Pretty's rendering.
type Options struct {
	// Color forces colored output on or off. Use DefaultColor to pick
	// based on whether w is a terminal.
	Color bool
	// Context is the number of source lines shown before/after the
	// primary line. 0 behaves like 1.
	Context int
}

// DefaultColor reports whether fd looks like an interactive terminal,
// the same signal the teacher's CLI used to decide on ANSI output.
func DefaultColor(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

const tabWidth = 8

// Pretty writes one block per diagnostic in bag (call bag.Sort first for a
// deterministic order) using fs to resolve file paths and source lines.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts Options) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	hintColor := color.New(color.FgHiBlack)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)
	helpColor := color.New(color.FgGreen, color.Bold)

	prev := color.NoColor
	defer func() { color.NoColor = prev }()
	color.NoColor = !opts.Color

	context := opts.Context
	if context <= 0 {
		context = 1
	}

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}
		renderOne(w, d, fs, context, renderColors{
			errorColor, warningColor, infoColor, hintColor,
			pathColor, codeColor, lineNumColor, underlineColor, helpColor,
		})
	}
}

type renderColors struct {
	errorColor, warningColor, infoColor, hintColor *color.Color
	pathColor, codeColor, lineNumColor             *color.Color
	underlineColor, helpColor                      *color.Color
}

func (rc renderColors) forSeverity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.Error:
		return rc.errorColor
	case diag.Warning:
		return rc.warningColor
	case diag.Info:
		return rc.infoColor
	default:
		return rc.hintColor
	}
}

func renderOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, context int, rc renderColors) {
	span := d.Primary()
	f := fs.Get(span.File)

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		rc.pathColor.Sprint(f.Path),
		span.Start.Line, span.Start.Column,
		rc.forSeverity(d.Severity).Sprint(d.Severity.String()),
		rc.codeColor.Sprint(string(d.Code)),
		d.Message,
	)
	fmt.Fprintf(w, "  --> %s:%d:%d\n", rc.pathColor.Sprint(f.Path), span.Start.Line, span.Start.Column)

	startLine := span.Start.Line
	if startLine > uint32(context) {
		startLine -= uint32(context)
	} else {
		startLine = 1
	}
	endLine := span.Start.Line + uint32(context)

	lineNumWidth := len(fmt.Sprintf("%d", endLine))
	if lineNumWidth < 3 {
		lineNumWidth = 3
	}

	for line := startLine; line <= endLine; line++ {
		text := f.GetLine(line)
		if text == "" && line != span.Start.Line && line > 1 {
			continue
		}
		gutter := fmt.Sprintf("%*d | ", lineNumWidth, line)
		fmt.Fprintf(w, "%s%s\n", rc.lineNumColor.Sprint(gutter), text)

		if line == span.Start.Line {
			endCol := span.End.Column
			if span.End.Line > span.Start.Line {
				endCol = uint32(len(text)) + 1
			}
			underline := buildUnderline(text, span.Start.Column, endCol, lineNumWidth+3)
			fmt.Fprintln(w, rc.underlineColor.Sprint(underline))
		}
	}

	for _, note := range d.Notes {
		fmt.Fprintf(w, "  %s: %s\n", rc.infoColor.Sprint("note"), note)
	}
	if d.Help != "" {
		fmt.Fprintf(w, "  %s: %s\n", rc.helpColor.Sprint("help"), d.Help)
	}
}

// buildUnderline renders a "~~~^" caret line aligned under [startCol,endCol)
// of text, accounting for tabs and double-width runes.
func buildUnderline(text string, startCol, endCol uint32, indent int) string {
	var b strings.Builder
	for i := 0; i < indent; i++ {
		b.WriteByte(' ')
	}
	visualStart := visualWidthUpTo(text, startCol)
	visualEnd := visualWidthUpTo(text, endCol)
	for i := 0; i < visualStart; i++ {
		b.WriteByte(' ')
	}
	span := visualEnd - visualStart
	if span <= 0 {
		b.WriteByte('^')
		return b.String()
	}
	for i := 0; i < span; i++ {
		if i == span-1 {
			b.WriteByte('^')
		} else {
			b.WriteByte('~')
		}
	}
	return b.String()
}

// visualWidthUpTo returns the on-screen column width of s up to the
// 1-based byte column byteCol, expanding tabs and widening Unicode runes.
func visualWidthUpTo(s string, byteCol uint32) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visual := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visual = (visual + tabWidth) / tabWidth * tabWidth
		} else {
			visual += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visual
}
