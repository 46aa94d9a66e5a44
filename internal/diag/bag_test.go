package diag

import (
	"testing"

	"snask/internal/source"
)

func span(file source.FileID, startOff, endOff uint32) source.Span {
	return source.Span{
		File:  file,
		Start: source.Position{Offset: startOff},
		End:   source.Position{Offset: endOff},
	}
}

func TestBagSortOrdersBySpanThenSeverityThenCode(t *testing.T) {
	b := NewBag()
	b.Add(NewError(SemVarNotFound, span(1, 10, 12), "later"))
	b.Add(New(Warning, SemInvalidOperation, span(1, 1, 2), "warn at start"))
	b.Add(NewError(SemTypeMismatch, span(1, 1, 2), "error at start"))
	b.Sort()

	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Code != SemTypeMismatch {
		t.Fatalf("expected error-before-warning at the same span, got %s first", items[0].Code)
	}
	if items[2].Code != SemVarNotFound {
		t.Fatalf("expected the later span last, got %s last", items[2].Code)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag()
	b.Add(NewError(SemVarNotFound, span(1, 0, 1), "x not found"))
	b.Add(NewError(SemVarNotFound, span(1, 0, 1), "x not found"))
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("expected dedup to collapse to 1 item, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag()
	if b.HasErrors() {
		t.Fatalf("empty bag should not have errors")
	}
	b.Add(New(Warning, SemInvalidOperation, span(1, 0, 1), "warn"))
	if b.HasErrors() {
		t.Fatalf("bag with only a warning should not have errors")
	}
	b.Add(NewError(SemVarNotFound, span(1, 0, 1), "err"))
	if !b.HasErrors() {
		t.Fatalf("bag with an error diagnostic should report HasErrors")
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag()
	r := NewDedupReporter(BagReporter{Bag: bag})
	d1 := NewError(SemVarNotFound, span(1, 0, 1), "x not found")
	d2 := NewError(SemVarNotFound, span(1, 0, 1), "x not found")
	r.Report(d1)
	r.Report(d2)
	if bag.Len() != 1 {
		t.Fatalf("expected deduped reporter to forward once, got %d", bag.Len())
	}
}
