// Package ir defines the typed intermediate representation produced
// by the analyzer: a Type system, the Symbol variants a Scope can
// bind a name to, and a typed mirror of the AST that carries resolved
// types and symbol references instead of bare names.
package ir

import "fmt"

// Kind enumerates the closed set of types the language supports.
// Equality between Types is structural, not by identity.
type Kind int

const (
	Integer Kind = iota
	Float
	Bool
	Str
	Bytes
	List
	Tuple
)

// Type is a value of the closed type set. List and Tuple carry an
// Elem describing the contained type; every other Kind leaves Elem nil.
type Type struct {
	Kind Kind
	Elem *Type
}

func Int() Type   { return Type{Kind: Integer} }
func Flt() Type   { return Type{Kind: Float} }
func Boolean() Type { return Type{Kind: Bool} }
func String() Type { return Type{Kind: Str} }
func ByteStr() Type { return Type{Kind: Bytes} }

func ListOf(elem Type) Type  { return Type{Kind: List, Elem: &elem} }
func TupleOf(elem Type) Type { return Type{Kind: Tuple, Elem: &elem} }

// Equal reports structural equality: same Kind and, for List/Tuple,
// recursively equal element types.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Elem == nil || other.Elem == nil {
		return t.Elem == other.Elem
	}
	return t.Elem.Equal(*other.Elem)
}

func (t Type) String() string {
	switch t.Kind {
	case Integer:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Str:
		return "str"
	case Bytes:
		return "bytes"
	case List:
		return fmt.Sprintf("list[%s]", t.Elem.String())
	case Tuple:
		return fmt.Sprintf("tuple[%s]", t.Elem.String())
	default:
		return "?"
	}
}

// IsScalar reports whether values of this type fit in a single wasm
// i32/f64 stack slot rather than living behind a linear-memory pointer.
func (t Type) IsScalar() bool {
	return t.Kind == Integer || t.Kind == Bool || t.Kind == Float
}
