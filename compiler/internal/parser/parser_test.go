package parser

import (
	"testing"

	"github.com/nalgeon/be"
	"github.com/sylang/sysyc/compiler/internal/ast"
)

func parse(t *testing.T, src string) *ast.TranslationUnit {
	t.Helper()
	u, err := New(src).ParseUnit()
	be.Err(t, err, nil)
	return u
}

func parseOneExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	u := parse(t, "int main() { "+src+"; }")
	fn := u.Items[0].(*ast.FuncDef)
	be.Equal(t, len(fn.Body.Items), 1)
	return fn.Body.Items[0].(*ast.ExprStmt).X
}

func TestEmptyUnit(t *testing.T) {
	u := parse(t, "")
	be.Equal(t, len(u.Items), 0)
}

func TestGlobalDeclarations(t *testing.T) {
	u := parse(t, `
		const int n = 4, m = 5;
		int a, b = 1, c[2][3];
	`)
	be.Equal(t, len(u.Items), 5)

	cd := u.Items[0].(*ast.ConstVarDef)
	be.Equal(t, cd.Name, "n")
	be.Equal(t, u.Items[1].(*ast.ConstVarDef).Name, "m")

	vd := u.Items[3].(*ast.VarDef)
	be.Equal(t, vd.Name, "b")
	be.True(t, vd.Init != nil)

	ad := u.Items[4].(*ast.ArrayDef)
	be.Equal(t, ad.Name, "c")
	be.Equal(t, len(ad.Lens), 2)
}

func TestFunctionHeads(t *testing.T) {
	u := parse(t, `
		void f() { }
		int g(int a, int b[], int c[][3]) { return 0; }
	`)
	f := u.Items[0].(*ast.FuncDef)
	be.True(t, f.ReturnsVoid)
	be.Equal(t, len(f.Params), 0)

	g := u.Items[1].(*ast.FuncDef)
	be.Equal(t, g.ReturnsVoid, false)
	be.Equal(t, len(g.Params), 3)

	_, isInt := g.Params[0].(*ast.IntParam)
	be.True(t, isInt)
	p1 := g.Params[1].(*ast.PointerParam)
	be.Equal(t, len(p1.Dims), 0)
	p2 := g.Params[2].(*ast.PointerParam)
	be.Equal(t, len(p2.Dims), 1)
}

func TestIntVsFuncDisambiguation(t *testing.T) {
	u := parse(t, "int f() { return 0; } int f2;")
	_, isFn := u.Items[0].(*ast.FuncDef)
	be.True(t, isFn)
	_, isVar := u.Items[1].(*ast.VarDef)
	be.True(t, isVar)
}

func TestIntegerLiterals(t *testing.T) {
	for src, want := range map[string]int{
		"0":    0,
		"42":   42,
		"0x1F": 31,
		"017":  15,
	} {
		lit := parseOneExpr(t, src).(*ast.IntLit)
		be.Equal(t, lit.Value, want)
	}
}

func TestPrecedence(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	e := parseOneExpr(t, "1 + 2 * 3").(*ast.BinaryExpr)
	be.Equal(t, e.Op, "+")
	right := e.Right.(*ast.BinaryExpr)
	be.Equal(t, right.Op, "*")

	// a || b && c parses as a || (b && c)
	e = parseOneExpr(t, "a || b && c").(*ast.BinaryExpr)
	be.Equal(t, e.Op, "||")
	be.Equal(t, e.Right.(*ast.BinaryExpr).Op, "&&")
}

func TestLeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 parses as (1 - 2) - 3
	e := parseOneExpr(t, "1 - 2 - 3").(*ast.BinaryExpr)
	be.Equal(t, e.Op, "-")
	be.Equal(t, e.Left.(*ast.BinaryExpr).Op, "-")
	be.Equal(t, e.Right.(*ast.IntLit).Value, 3)
}

func TestUnaryChains(t *testing.T) {
	e := parseOneExpr(t, "!-+x").(*ast.UnaryExpr)
	be.Equal(t, e.Op, "!")
	inner := e.X.(*ast.UnaryExpr)
	be.Equal(t, inner.Op, "-")
	be.Equal(t, inner.X.(*ast.UnaryExpr).Op, "+")
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	e := parseOneExpr(t, "a = b = 1").(*ast.AssignExpr)
	be.Equal(t, e.Target.Name, "a")
	inner := e.Value.(*ast.AssignExpr)
	be.Equal(t, inner.Target.Name, "b")
}

func TestAssignmentBindsLoosest(t *testing.T) {
	e := parseOneExpr(t, "a = b + 1").(*ast.AssignExpr)
	be.Equal(t, e.Value.(*ast.BinaryExpr).Op, "+")
}

func TestAssignmentTargetMustBeLVal(t *testing.T) {
	_, err := New("int main() { 1 + 2 = 3; }").ParseUnit()
	be.Err(t, err)
	_, err = New("int main() { f() = 3; }").ParseUnit()
	be.Err(t, err)
}

func TestIndexedAssignTarget(t *testing.T) {
	e := parseOneExpr(t, "a[i][j] = 0").(*ast.AssignExpr)
	be.Equal(t, len(e.Target.Indices), 2)
}

func TestCalls(t *testing.T) {
	e := parseOneExpr(t, "f(1, g(), a[2])").(*ast.CallExpr)
	be.Equal(t, e.Callee, "f")
	be.Equal(t, len(e.Args), 3)
	be.Equal(t, e.Args[1].(*ast.CallExpr).Callee, "g")
}

func TestBranchesNormalizeToBlocks(t *testing.T) {
	u := parse(t, `
		int main() {
			if (1) return 1;
			else return 0;
		}
	`)
	fn := u.Items[0].(*ast.FuncDef)
	ifs := fn.Body.Items[0].(*ast.IfStmt)
	be.Equal(t, len(ifs.Then.Items), 1)
	be.True(t, ifs.Else != nil)
	be.Equal(t, len(ifs.Else.Items), 1)
}

func TestWhileSingleStatementBody(t *testing.T) {
	u := parse(t, "int main() { while (x) x = x - 1; return x; }")
	fn := u.Items[0].(*ast.FuncDef)
	ws := fn.Body.Items[0].(*ast.WhileStmt)
	be.Equal(t, len(ws.Body.Items), 1)
}

func TestEmptyStatements(t *testing.T) {
	u := parse(t, "int main() { ;; if (1); return 0; }")
	fn := u.Items[0].(*ast.FuncDef)
	// empty statements vanish; the if keeps an empty then-block
	ifs := fn.Body.Items[0].(*ast.IfStmt)
	be.Equal(t, len(ifs.Then.Items), 0)
}

func TestDanglingElse(t *testing.T) {
	u := parse(t, `
		int main() {
			if (a)
				if (b) return 1;
				else return 2;
			return 0;
		}
	`)
	fn := u.Items[0].(*ast.FuncDef)
	outer := fn.Body.Items[0].(*ast.IfStmt)
	be.True(t, outer.Else == nil)
	inner := outer.Then.Items[0].(*ast.IfStmt)
	be.True(t, inner.Else != nil)
}

func TestInitializerLists(t *testing.T) {
	u := parse(t, "int a[2][2] = {{1, 2}, {3}};")
	ad := u.Items[0].(*ast.ArrayDef)
	be.True(t, ad.Init != nil)
	be.Equal(t, len(ad.Init.Items), 2)
	be.True(t, ad.Init.Items[0].List != nil)
	be.Equal(t, len(ad.Init.Items[1].List.Items), 1)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"int",
		"int main( { }",
		"int main() { return 1 }",
		"int main() { if 1 return 1; }",
		"int a[2] = {1, ;",
		"void 3() { }",
		"int main() { @ }",
	} {
		_, err := New(src).ParseUnit()
		be.Err(t, err)
	}
}

func TestLiteralOutOfRange(t *testing.T) {
	_, err := New("int main() { return 99999999999999999999; }").ParseUnit()
	be.Err(t, err)
}
