package check

import (
	"fmt"
	"strings"
)

/* ---------- symbols ---------- */

// Symbol is the closed variant of what a name can denote. Every consumer
// switches exhaustively over these six forms.
type Symbol interface {
	symbol()
	String() string
}

// ConstScalar is a compile-time integer constant.
type ConstScalar struct {
	Value int
}

// Variable is a mutable scalar; its value is never tracked.
type Variable struct{}

// ConstArray is a constant array with fully resolved dimensions and a
// flattened, zero-filled element store.
type ConstArray struct {
	Dims   []int
	Values []int
}

// Array is a mutable array with fully resolved dimensions.
type Array struct {
	Dims []int
}

// Function is a callable signature.
type Function struct {
	Ret    Type
	Params []Type
}

// Pointer is an array-decayed parameter: the leading dimension is
// erased, the trailing dimensions are retained.
type Pointer struct {
	Dims []int
}

func (*ConstScalar) symbol() {}
func (*Variable) symbol()    {}
func (*ConstArray) symbol()  {}
func (*Array) symbol()       {}
func (*Function) symbol()    {}
func (*Pointer) symbol()     {}

func (s *ConstScalar) String() string { return fmt.Sprintf("constant %d", s.Value) }
func (s *Variable) String() string    { return "variable" }
func (s *ConstArray) String() string  { return "constant array" + dimsString(s.Dims) }
func (s *Array) String() string       { return "array" + dimsString(s.Dims) }
func (s *Pointer) String() string     { return "pointer" + dimsString(append([]int{-1}, s.Dims...)) }

func (s *Function) String() string {
	var parts []string
	for _, p := range s.Params {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("function(%s) %s", strings.Join(parts, ", "), s.Ret)
}

func dimsString(dims []int) string {
	var b strings.Builder
	for _, d := range dims {
		if d < 0 {
			b.WriteString("[]")
			continue
		}
		fmt.Fprintf(&b, "[%d]", d)
	}
	return b.String()
}
