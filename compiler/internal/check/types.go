package check

import (
	"fmt"
	"strings"
)

/* ---------- value types ---------- */

// Kind discriminates the value-level type of an expression.
type Kind int

const (
	KindInt Kind = iota
	KindVoid
	KindPointer
)

// Type is the type of an expression: int, void, or a decayed array
// pointer carrying its trailing dimensions for shape-checked indexing.
type Type struct {
	Kind Kind
	Dims []int // trailing dimensions; only meaningful for KindPointer
}

func IntType() Type              { return Type{Kind: KindInt} }
func VoidType() Type             { return Type{Kind: KindVoid} }
func PointerType(dims []int) Type { return Type{Kind: KindPointer, Dims: dims} }

func (t Type) IsInt() bool  { return t.Kind == KindInt }
func (t Type) IsVoid() bool { return t.Kind == KindVoid }

// Equal reports type identity; pointers must agree on every trailing
// dimension.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind != KindPointer {
		return true
	}
	return equalDims(t.Dims, o.Dims)
}

func (t Type) String() string {
	switch t.Kind {
	case KindInt:
		return "int"
	case KindVoid:
		return "void"
	case KindPointer:
		var b strings.Builder
		b.WriteString("int (*)")
		for _, d := range t.Dims {
			fmt.Fprintf(&b, "[%d]", d)
		}
		return b.String()
	default:
		return "unknown"
	}
}
