package ast

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestExprString(t *testing.T) {
	e := &BinaryExpr{
		Op:   "+",
		Left: &IntLit{Value: 1},
		Right: &BinaryExpr{
			Op:    "*",
			Left:  &LVal{Name: "a", Indices: []Expr{&IntLit{Value: 2}}},
			Right: &UnaryExpr{Op: "-", X: &IntLit{Value: 3}},
		},
	}
	be.Equal(t, ExprString(e), "(1 + (a[2] * -3))")
}

func TestExprStringCallAndAssign(t *testing.T) {
	e := &AssignExpr{
		Target: &LVal{Name: "x"},
		Value:  &CallExpr{Callee: "f", Args: []Expr{&IntLit{Value: 1}, &LVal{Name: "y"}}},
	}
	be.Equal(t, ExprString(e), "x = f(1, y)")
}

func TestDumpUnit(t *testing.T) {
	u := &TranslationUnit{Items: []GlobalItem{
		&ConstVarDef{Name: "n", Init: &IntLit{Value: 4}},
		&FuncDef{
			Name:   "main",
			Params: []Param{&IntParam{Name: "argc"}},
			Body: &Block{Items: []BlockItem{
				&VarDef{Name: "x", Init: &IntLit{Value: 0}},
				&WhileStmt{
					Cond: &LVal{Name: "x"},
					Body: &Block{Items: []BlockItem{&BreakStmt{}}},
				},
				&ReturnStmt{X: &LVal{Name: "x"}},
			}},
		},
	}}
	want := "const int n = 4\n" +
		"\nint main(int argc)\n" +
		"  int x = 0\n" +
		"  while x\n" +
		"    break\n" +
		"  return x\n"
	be.Equal(t, DumpUnit(u), want)
}

func TestDumpArrayDefs(t *testing.T) {
	u := &TranslationUnit{Items: []GlobalItem{
		&ArrayDef{
			Name: "g",
			Lens: []Expr{&IntLit{Value: 2}, &IntLit{Value: 2}},
			Init: &InitList{Items: []InitItem{
				{List: &InitList{Items: []InitItem{{Expr: &IntLit{Value: 1}}}}},
				{Expr: &IntLit{Value: 9}},
			}},
		},
	}}
	be.Equal(t, DumpUnit(u), "int g[2][2] = {{1}, 9}\n")
}
