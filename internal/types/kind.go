// Package types implements the closed set of type tags the semantic
// analyzer checks against (spec.md §3). Unlike the teacher's interned,
// parameterised type graph (arrays/pointers/references/generics), this
// language has no generics and no parameterised list/dict element types, so
// a flat Kind enum plus a single Function variant is the whole type system.
package types

import "fmt"

// Kind enumerates every type tag the language supports.
type Kind uint8

const (
	Invalid Kind = iota
	Int
	Float
	String
	Bool
	List
	Dict
	Void
	Any
	U8
	I32
	I64
	Ptr
	Func
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case List:
		return "List"
	case Dict:
		return "Dict"
	case Void:
		return "Void"
	case Any:
		return "Any"
	case U8:
		return "U8"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case Ptr:
		return "Ptr"
	case Func:
		return "Function"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// numericKinds is the set of tags is_numeric treats as interchangeable
// (spec.md §3: "is_numeric = any of {Int, Float, U8, I32, I64, Ptr}").
var numericKinds = map[Kind]bool{
	Int:   true,
	Float: true,
	U8:    true,
	I32:   true,
	I64:   true,
	Ptr:   true,
}

// IsNumeric reports whether k belongs to the numeric-subtyping family.
func IsNumeric(k Kind) bool {
	return numericKinds[k]
}

// byName maps the type-annotation spellings the parser accepts to their Kind.
var byName = map[string]Kind{
	"int":    Int,
	"Int":    Int,
	"float":  Float,
	"Float":  Float,
	"string": String,
	"String": String,
	"bool":   Bool,
	"Bool":   Bool,
	"list":   List,
	"List":   List,
	"dict":   Dict,
	"Dict":   Dict,
	"void":   Void,
	"Void":   Void,
	"any":    Any,
	"Any":    Any,
	"u8":     U8,
	"U8":     U8,
	"i32":    I32,
	"I32":    I32,
	"i64":    I64,
	"I64":    I64,
	"ptr":    Ptr,
	"Ptr":    Ptr,
}

// Lookup resolves a type-annotation name written in source to its Kind.
// Unrecognised names report Invalid so callers can emit a diagnostic rather
// than silently defaulting to Any.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}
