package diag

import "snask/internal/source"

// Annotation attaches a secondary (or the primary) span to a diagnostic,
// each with its own severity and optional message — spec.md §3's
// `{span, optional message, severity}` shape.
type Annotation struct {
	Span     source.Span
	Message  string
	Severity Severity
}

// Diagnostic is a single structured compiler finding. It is a pure value:
// formatting (internal/diagfmt) and enrichment (internal/hyper) compose
// around it rather than subclassing it (spec.md §9, "Polymorphism over
// diagnostic kinds").
type Diagnostic struct {
	Severity    Severity
	Code        Code
	Message     string
	Annotations []Annotation
	Notes       []string
	Help        string
}

// New builds a bare diagnostic with a single primary annotation.
func New(sev Severity, code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Annotations: []Annotation{
			{Span: primary, Severity: sev},
		},
	}
}

// NewError is a shortcut for New(Error, ...).
func NewError(code Code, primary source.Span, msg string) *Diagnostic {
	return New(Error, code, primary, msg)
}

// Primary returns the diagnostic's first (canonical) span. Every
// diagnostic constructed through New/NewError has at least one.
func (d *Diagnostic) Primary() source.Span {
	if d == nil || len(d.Annotations) == 0 {
		return source.Span{}
	}
	return d.Annotations[0].Span
}

// WithAnnotation appends a secondary annotation and returns d for chaining.
func (d *Diagnostic) WithAnnotation(span source.Span, msg string, sev Severity) *Diagnostic {
	d.Annotations = append(d.Annotations, Annotation{Span: span, Message: msg, Severity: sev})
	return d
}

// WithNote appends a note string.
func (d *Diagnostic) WithNote(note string) *Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp sets the diagnostic's help text.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}
