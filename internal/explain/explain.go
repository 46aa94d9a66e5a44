// Package explain loads the embedded code -> paragraph lookup table used to
// compose a hyper-diagnostic's explanation note (spec.md §2 component K).
package explain

import (
	_ "embed"
	"fmt"

	"snask/internal/diag"

	"gopkg.in/yaml.v3"
)

//go:embed explanations.yaml
var tableYAML []byte

// Table is a loaded, immutable code -> paragraph mapping.
type Table struct {
	byCode map[diag.Code]string
}

// Load parses the embedded explanations.yaml into a Table.
func Load() (*Table, error) {
	raw := make(map[string]string)
	if err := yaml.Unmarshal(tableYAML, &raw); err != nil {
		return nil, fmt.Errorf("explain: parse embedded table: %w", err)
	}
	t := &Table{byCode: make(map[diag.Code]string, len(raw))}
	for code, text := range raw {
		t.byCode[diag.Code(code)] = text
	}
	return t, nil
}

// MustLoad is Load, panicking on failure; the embedded table is fixed at
// build time so a failure here is a packaging bug.
func MustLoad() *Table {
	t, err := Load()
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the explanation paragraph for code, if one is recorded.
func (t *Table) Lookup(code diag.Code) (string, bool) {
	s, ok := t.byCode[code]
	return s, ok
}
