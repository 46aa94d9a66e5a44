package diag

import "sort"

// Bag holds an accumulating, order-preserving collection of diagnostics.
// Semantic analysis recovers locally after each statement (spec.md §7), so
// a single compile can surface many diagnostics through one Bag.
type Bag struct {
	items []*Diagnostic
}

// NewBag creates an empty Bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic. A nil diagnostic is ignored.
func (b *Bag) Add(d *Diagnostic) {
	if b == nil || d == nil {
		return
	}
	b.items = append(b.items, d)
}

// Len returns the number of diagnostics collected.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Items returns the underlying slice. Callers must not mutate it.
func (b *Bag) Items() []*Diagnostic {
	if b == nil {
		return nil
	}
	return b.items
}

// HasErrors reports whether any diagnostic has Severity >= Error.
func (b *Bag) HasErrors() bool {
	for _, d := range b.Items() {
		if d.Severity >= Error {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by primary span (file, start offset, end offset),
// then by severity descending, then by code — giving a deterministic,
// source-order-first rendering order (spec.md §8, "errors appear in
// source order").
func (b *Bag) Sort() {
	if b == nil {
		return
	}
	sort.SliceStable(b.items, func(i, j int) bool {
		pi, pj := b.items[i].Primary(), b.items[j].Primary()
		if pi.File != pj.File {
			return pi.File < pj.File
		}
		if pi.Start.Offset != pj.Start.Offset {
			return pi.Start.Offset < pj.Start.Offset
		}
		if pi.End.Offset != pj.End.Offset {
			return pi.End.Offset < pj.End.Offset
		}
		if b.items[i].Severity != b.items[j].Severity {
			return b.items[i].Severity > b.items[j].Severity
		}
		return b.items[i].Code < b.items[j].Code
	})
}

// Dedup drops diagnostics that repeat an earlier (Code, primary span) pair.
func (b *Bag) Dedup() {
	if b == nil {
		return
	}
	seen := make(map[string]bool, len(b.items))
	out := make([]*Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := string(d.Code) + "@" + d.Primary().String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	b.items = out
}
