// Package dialect provides lightweight detection for "foreign dialect"
// signals (Rust/Go/TypeScript/Python-ish identifiers) used by the semantic
// analyzer's opt-in alien-hints pass (spec.md §4.I's AlienHints option).
// Evidence collection never changes parsing or semantic behavior; it only
// decorates unresolved-name diagnostics that would have fired anyway.
package dialect

// Kind names a foreign language a Snask source file may resemble.
type Kind uint8

const (
	Unknown Kind = iota
	Rust
	Go
	TypeScript
	Python

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Rust:
		return "rust"
	case Go:
		return "go"
	case TypeScript:
		return "typescript"
	case Python:
		return "python"
	default:
		return "unknown"
	}
}
