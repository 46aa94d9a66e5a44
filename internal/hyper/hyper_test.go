package hyper

import (
	"testing"

	"snask/internal/diag"
	"snask/internal/source"
)

func newBaseDiag() *diag.Diagnostic {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.snask", []byte("let x = 1;\n"))
	return diag.NewError(diag.SemVarNotFound, source.Single(fileID, source.NewPosition(1, 1)), "y is not defined")
}

func TestPromoteAtOrAboveQuickFixThresholdSetsHelp(t *testing.T) {
	d := newBaseDiag()
	h := New(d).WithFixit(Fixit{Title: "did you mean 'x'?", Confidence: 90, Kind: QuickFix})

	got := Promote(h, nil)
	if got.Help != "did you mean 'x'?" {
		t.Fatalf("Help = %q, want quickfix title", got.Help)
	}
}

func TestPromoteBelowQuickFixAboveMaybeAddsNote(t *testing.T) {
	d := newBaseDiag()
	h := New(d).WithFixit(Fixit{Title: "maybe rename", Confidence: 89, Kind: Refactor})

	got := Promote(h, nil)
	if got.Help != "" {
		t.Fatalf("Help should stay empty at confidence 89, got %q", got.Help)
	}
	found := false
	for _, n := range got.Notes {
		if n == "maybe rename" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected note for confidence-89 fixit, got %v", got.Notes)
	}
}

func TestPromoteBelowMaybeThresholdSuppressesFixit(t *testing.T) {
	d := newBaseDiag()
	h := New(d).WithFixit(Fixit{Title: "unlikely guess", Confidence: 69, Kind: QuickFix})

	got := Promote(h, nil)
	if got.Help != "" {
		t.Fatalf("Help should be empty, got %q", got.Help)
	}
	for _, n := range got.Notes {
		if n == "unlikely guess" {
			t.Fatal("confidence-69 fixit should have been suppressed")
		}
	}
}

func TestPromoteAtExactlyMaybeThresholdAddsNote(t *testing.T) {
	d := newBaseDiag()
	h := New(d).WithFixit(Fixit{Title: "borderline guess", Confidence: MaybeThreshold, Kind: QuickFix})

	got := Promote(h, nil)
	found := false
	for _, n := range got.Notes {
		if n == "borderline guess" {
			found = true
		}
	}
	if !found {
		t.Fatal("confidence-70 fixit should appear as a note")
	}
}

func TestPromoteUsesHighestConfidenceFixit(t *testing.T) {
	d := newBaseDiag()
	h := New(d).
		WithFixit(Fixit{Title: "low", Confidence: 50}).
		WithFixit(Fixit{Title: "high", Confidence: 95})

	got := Promote(h, nil)
	if got.Help != "high" {
		t.Fatalf("Help = %q, want the highest-confidence fixit", got.Help)
	}
}
