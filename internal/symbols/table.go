package symbols

// globalFrame is the always-present index 0 scope.
const globalFrame = 0

// Table is a stack of string->Symbol frames. Frame 0 is the global scope
// and always exists; Enter/Exit push and pop inner scopes.
type Table struct {
	frames []map[string]Symbol
}

// NewTable builds a table with only the global frame open.
func NewTable() *Table {
	return &Table{frames: []map[string]Symbol{{}}}
}

// Enter pushes a fresh inner scope.
func (t *Table) Enter() {
	t.frames = append(t.frames, map[string]Symbol{})
}

// Exit pops the innermost scope. Exiting the global frame panics: callers
// must pair every Enter with exactly one Exit.
func (t *Table) Exit() {
	if len(t.frames) <= 1 {
		panic("symbols: Exit called with no inner scope open")
	}
	t.frames = t.frames[:len(t.frames)-1]
}

// Depth reports how many frames are currently open, including the global one.
func (t *Table) Depth() int { return len(t.frames) }

// Define binds name in the innermost scope. In the global frame, a
// redefinition silently overwrites the previous binding. In any inner
// frame, redefining a name already present in that same frame fails.
func (t *Table) Define(sym Symbol) bool {
	top := len(t.frames) - 1
	frame := t.frames[top]
	if top != globalFrame {
		if _, exists := frame[sym.Name]; exists {
			return false
		}
	}
	frame[sym.Name] = sym
	return true
}

// Lookup walks from the innermost scope outward and returns the first match.
func (t *Table) Lookup(name string) (Symbol, bool) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if sym, ok := t.frames[i][name]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

// LookupLocal reports whether name is bound in the innermost scope only,
// used by declaration handling to detect same-scope redeclaration.
func (t *Table) LookupLocal(name string) (Symbol, bool) {
	top := t.frames[len(t.frames)-1]
	sym, ok := top[name]
	return sym, ok
}
