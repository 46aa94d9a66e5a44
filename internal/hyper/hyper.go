// Package hyper implements HyperDiagnostic, spec.md §3's extension of
// Diagnostic with ranked causes and fix-its plus a confidence-gated
// promotion rule ("Polymorphism over diagnostic kinds": diagnostics stay
// values, this package only decorates them, never subclasses).
package hyper

import (
	"fmt"
	"sort"

	"snask/internal/diag"
	"snask/internal/explain"

	"github.com/google/uuid"
)

// FixitKind classifies the shape of a suggested edit.
type FixitKind int

const (
	QuickFix FixitKind = iota
	Refactor
	Format
)

func (k FixitKind) String() string {
	switch k {
	case QuickFix:
		return "quickfix"
	case Refactor:
		return "refactor"
	case Format:
		return "format"
	default:
		return "unknown"
	}
}

// QuickFixThreshold and MaybeThreshold are the confidence cutoffs spec.md
// §3 pins: a top fix-it at or above QuickFixThreshold renders as help; at
// or above MaybeThreshold but below QuickFixThreshold it renders as a
// note; below MaybeThreshold it is suppressed entirely.
const (
	QuickFixThreshold = 90
	MaybeThreshold    = 70
)

// Cause is one ranked candidate explanation for a diagnostic.
type Cause struct {
	Title      string
	Detail     string
	Confidence int
}

// Fixit is one ranked candidate suggested edit.
type Fixit struct {
	Title      string
	Confidence int
	Kind       FixitKind
	ApplyHint  string
}

// HyperDiagnostic wraps a base Diagnostic with ranked causes and fix-its,
// identified by a random (v4) UUID that New assigns afresh, naming this one
// occurrence in trace records.
type HyperDiagnostic struct {
	ID     uuid.UUID
	Base   *diag.Diagnostic
	Causes []Cause
	Fixits []Fixit
}

// New wraps base in a fresh HyperDiagnostic with a new random ID.
func New(base *diag.Diagnostic) *HyperDiagnostic {
	return &HyperDiagnostic{ID: uuid.New(), Base: base}
}

// WithCause appends a ranked cause and returns h for chaining.
func (h *HyperDiagnostic) WithCause(c Cause) *HyperDiagnostic {
	h.Causes = append(h.Causes, c)
	return h
}

// WithFixit appends a ranked fix-it and returns h for chaining.
func (h *HyperDiagnostic) WithFixit(f Fixit) *HyperDiagnostic {
	h.Fixits = append(h.Fixits, f)
	return h
}

// topFixit returns the highest-confidence fix-it, or false if there are none.
func (h *HyperDiagnostic) topFixit() (Fixit, bool) {
	if len(h.Fixits) == 0 {
		return Fixit{}, false
	}
	ranked := append([]Fixit(nil), h.Fixits...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Confidence > ranked[j].Confidence })
	return ranked[0], true
}

// Promote applies spec.md §3's promotion rule to h, composing its causes
// and top fix-it onto h.Base and returning it. explanations may be nil; if
// given, its paragraph for h.Base.Code is appended as a trailing note.
func Promote(h *HyperDiagnostic, explanations *explain.Table) *diag.Diagnostic {
	d := h.Base

	ranked := append([]Cause(nil), h.Causes...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Confidence > ranked[j].Confidence })
	for _, c := range ranked {
		if c.Detail != "" {
			d.WithNote(fmt.Sprintf("%s (%s)", c.Title, c.Detail))
		} else {
			d.WithNote(c.Title)
		}
	}

	if fix, ok := h.topFixit(); ok {
		switch {
		case fix.Confidence >= QuickFixThreshold:
			d.WithHelp(fix.Title)
		case fix.Confidence >= MaybeThreshold:
			d.WithNote(fix.Title)
		}
	}

	if explanations != nil {
		if text, ok := explanations.Lookup(d.Code); ok {
			d.WithNote(text)
		}
	}

	return d
}
