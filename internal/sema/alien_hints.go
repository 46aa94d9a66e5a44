package sema

import (
	"fmt"

	"snask/internal/dialect"
)

const (
	alienHintRustThreshold       = 6
	alienHintGoThreshold         = 5
	alienHintTypeScriptThreshold = 5
	alienHintPythonThreshold     = 4

	alienHintDominanceMargin = 2
)

// applyAlienHints is the opt-in pass SPEC_FULL.md §4.I calls for: classify
// the whole program's unresolved-name evidence, and when one dialect
// clearly dominates, attach a note to every unresolved-name diagnostic
// whose own identifier matches that dialect's keyword table. It never adds
// or removes a diagnostic, only a Note on an existing one.
func (a *Analyzer) applyAlienHints() {
	if len(a.unresolved) == 0 {
		return
	}
	classification := (dialect.Classifier{}).Classify(a.evidence)
	if !alienHintsEligible(classification) {
		return
	}

	for _, u := range a.unresolved {
		hint, ok := matchingHint(a.evidence, u.name, classification.Kind)
		if !ok {
			continue
		}
		u.diagnostic.WithNote(fmt.Sprintf("looks like %s syntax (%s) — Snask has no equivalent keyword; check the name", classification.Kind, hint.Reason))
	}
}

func alienHintsEligible(c dialect.Classification) bool {
	if c.Kind == dialect.Unknown {
		return false
	}
	threshold := alienHintThreshold(c.Kind)
	if threshold == 0 || c.Score < threshold {
		return false
	}
	if c.RunnerUpScore > 0 && c.Score < c.RunnerUpScore+alienHintDominanceMargin {
		return false
	}
	return true
}

func alienHintThreshold(kind dialect.Kind) int {
	switch kind {
	case dialect.Rust:
		return alienHintRustThreshold
	case dialect.Go:
		return alienHintGoThreshold
	case dialect.TypeScript:
		return alienHintTypeScriptThreshold
	case dialect.Python:
		return alienHintPythonThreshold
	default:
		return 0
	}
}

func matchingHint(e *dialect.Evidence, name string, kind dialect.Kind) (dialect.Hint, bool) {
	for _, h := range e.Hints() {
		if h.Name == name && h.Dialect == kind {
			return h, true
		}
	}
	return dialect.Hint{}, false
}
