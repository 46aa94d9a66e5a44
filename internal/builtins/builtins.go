// Package builtins loads the embedded table of standard and "native"
// built-in symbols (spec.md §9, "treat the built-in list as a data table,
// not code") and exposes the closed native-name set that both the
// semantic analyzer and the module resolver consult as a single source of
// truth (spec.md §4.F/§4.J).
package builtins

import (
	_ "embed"
	"fmt"

	"snask/internal/types"

	"gopkg.in/yaml.v3"
)

//go:embed builtins.yaml
var tableYAML []byte

// entry mirrors one row of builtins.yaml.
type entry struct {
	Name     string   `yaml:"name"`
	Native   bool     `yaml:"native"`
	Params   []string `yaml:"params"`
	Variadic bool     `yaml:"variadic"`
	Return   string   `yaml:"return"`
}

type table struct {
	Builtins []entry `yaml:"builtins"`
}

// Builtin describes one pre-populated symbol: its name, its function type,
// whether it is variadic, and whether it belongs to the native family.
type Builtin struct {
	Name     string
	Type     types.Type
	Variadic bool
	Native   bool
}

// Env is a loaded, immutable snapshot of the built-in table. It is loaded
// fresh per sema.New/resolve.New call rather than held as package state
// (spec.md §5: no process-global state).
type Env struct {
	builtins []Builtin
	native   map[string]bool
}

// Load parses the embedded builtins.yaml into an Env.
func Load() (*Env, error) {
	var t table
	if err := yaml.Unmarshal(tableYAML, &t); err != nil {
		return nil, fmt.Errorf("builtins: parse embedded table: %w", err)
	}

	env := &Env{
		builtins: make([]Builtin, 0, len(t.Builtins)),
		native:   make(map[string]bool, len(t.Builtins)),
	}
	for _, e := range t.Builtins {
		params := make([]types.Kind, 0, len(e.Params))
		for _, p := range e.Params {
			k, ok := types.Lookup(p)
			if !ok {
				return nil, fmt.Errorf("builtins: %s: unknown param type %q", e.Name, p)
			}
			params = append(params, k)
		}
		ret, ok := types.Lookup(e.Return)
		if !ok {
			return nil, fmt.Errorf("builtins: %s: unknown return type %q", e.Name, e.Return)
		}
		b := Builtin{
			Name:     e.Name,
			Type:     types.NewFunc(params, ret),
			Variadic: e.Variadic,
			Native:   e.Native,
		}
		env.builtins = append(env.builtins, b)
		if e.Native {
			env.native[e.Name] = true
		}
	}
	return env, nil
}

// MustLoad is Load, panicking on failure. The embedded table is fixed at
// build time, so a failure here indicates a packaging bug, not bad input.
func MustLoad() *Env {
	env, err := Load()
	if err != nil {
		panic(err)
	}
	return env
}

// All returns every loaded built-in, in table order.
func (e *Env) All() []Builtin {
	return e.builtins
}

// IsNative reports whether name belongs to the closed native-function
// family (spec.md §4.F's alias-rewrite target set).
func (e *Env) IsNative(name string) bool {
	return e.native[name]
}

// NativeNames returns every native built-in name. internal/resolve calls
// this rather than keeping its own copy of the native set (spec.md §9,
// "both components MUST consult the same source of truth").
func (e *Env) NativeNames() []string {
	names := make([]string, 0, len(e.native))
	for _, b := range e.builtins {
		if b.Native {
			names = append(names, b.Name)
		}
	}
	return names
}
