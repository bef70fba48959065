package check

import (
	"testing"

	"github.com/nalgeon/be"
	"github.com/sylang/sysyc/compiler/internal/ast"
	"github.com/sylang/sysyc/compiler/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.TranslationUnit {
	t.Helper()
	u, err := parser.New(src).ParseUnit()
	be.Err(t, err, nil)
	return u
}

func checkSrc(t *testing.T, src string) error {
	t.Helper()
	return Check(mustParse(t, src))
}

func TestEmptyUnit(t *testing.T) {
	be.Err(t, checkSrc(t, ""), nil)
}

func TestGlobalDefinitions(t *testing.T) {
	src := `
		const int n = 10;
		int counter;
		int values[n];
		const int table[2][3] = {{1, 2, 3}, {4, 5, 6}};
	`
	be.Err(t, checkSrc(t, src), nil)
}

func TestDuplicateInSameScope(t *testing.T) {
	err := checkSrc(t, "int x; int x;")
	be.Err(t, err, ErrDuplicateDefinition)
	be.Equal(t, CodeOf(err), "SYE0001")
}

func TestDuplicateMixedKinds(t *testing.T) {
	be.Err(t, checkSrc(t, "const int x = 1; int x;"), ErrDuplicateDefinition)
	be.Err(t, checkSrc(t, "int f() { return 0; } int f;"), ErrDuplicateDefinition)
	be.Err(t, checkSrc(t, "int getint;"), ErrDuplicateDefinition)
}

func TestShadowingAllowed(t *testing.T) {
	src := `
		int x;
		int main() {
			int x = 1;
			{
				int x = 2;
				x = 3;
			}
			return x;
		}
	`
	be.Err(t, checkSrc(t, src), nil)
}

func TestShadowingIntrinsic(t *testing.T) {
	src := `
		int main() {
			int getint = 4;
			return getint;
		}
	`
	be.Err(t, checkSrc(t, src), nil)
}

func TestScopeBindingsDiscarded(t *testing.T) {
	src := `
		int main() {
			{ int inner = 1; }
			return inner;
		}
	`
	be.Err(t, checkSrc(t, src), ErrUndefinedIdentifier)
}

func TestUndefinedIdentifier(t *testing.T) {
	err := checkSrc(t, "int main() { return nowhere; }")
	be.Err(t, err, ErrUndefinedIdentifier)
	be.Equal(t, CodeOf(err), "SYE0002")
}

func TestUndefinedCallee(t *testing.T) {
	be.Err(t, checkSrc(t, "int main() { return missing(); }"), ErrUndefinedIdentifier)
}

func TestBreakAndContinue(t *testing.T) {
	be.Err(t, checkSrc(t, "void f() { break; }"), ErrIllegalJump)
	be.Err(t, checkSrc(t, "void f() { continue; }"), ErrIllegalJump)
	be.Err(t, checkSrc(t, `
		void f() {
			while (1) { }
			break;
		}
	`), ErrIllegalJump)
	be.Err(t, checkSrc(t, `
		void f() {
			while (1) {
				if (getint()) break;
				continue;
			}
		}
	`), nil)
}

func TestReturnArity(t *testing.T) {
	be.Err(t, checkSrc(t, "void f() { return; }"), nil)
	be.Err(t, checkSrc(t, "int f() { return 1; }"), nil)
	be.Err(t, checkSrc(t, "int f() { return; }"), ErrMissingReturnValue)
	be.Err(t, checkSrc(t, "void f() { return 1; }"), ErrUnexpectedReturnValue)
}

func TestReturnedValueMustBeInt(t *testing.T) {
	src := `
		int f(int a[]) {
			return a;
		}
	`
	be.Err(t, checkSrc(t, src), ErrTypeMismatch)
}

func TestConditionMustHaveValue(t *testing.T) {
	be.Err(t, checkSrc(t, `
		void noisy() { putch(10); }
		void f() {
			if (noisy()) { }
		}
	`), ErrIllegalCondition)
	be.Err(t, checkSrc(t, `
		void f() {
			while (getint()) putch(getch());
		}
	`), nil)
}

func TestCallArity(t *testing.T) {
	src := `
		int add(int a, int b) { return a + b; }
		int main() { return add(1); }
	`
	be.Err(t, checkSrc(t, src), ErrTypeMismatch)
}

func TestCallArgumentShape(t *testing.T) {
	src := `
		int sum(int a[][3]) { return a[0][0]; }
		int g[4][3];
		int main() { return sum(g); }
	`
	be.Err(t, checkSrc(t, src), nil)

	bad := `
		int sum(int a[][3]) { return a[0][0]; }
		int g[4][3];
		int main() { return sum(g[0]); }
	`
	be.Err(t, checkSrc(t, bad), ErrTypeMismatch)
}

func TestFunctionUsedAsValue(t *testing.T) {
	src := `
		int f() { return 0; }
		int main() { return f; }
	`
	be.Err(t, checkSrc(t, src), ErrTypeMismatch)
}

func TestScalarCannotBeIndexed(t *testing.T) {
	be.Err(t, checkSrc(t, "int x; int main() { return x[0]; }"), ErrTypeMismatch)
}

func TestIndexMustBeInt(t *testing.T) {
	src := `
		void v() { }
		int a[4];
		int main() { return a[v()]; }
	`
	be.Err(t, checkSrc(t, src), ErrTypeMismatch)
}

func TestOverIndexing(t *testing.T) {
	be.Err(t, checkSrc(t, "int a[4]; int main() { return a[1][2]; }"), ErrTypeMismatch)
}

func TestAssignToConstant(t *testing.T) {
	be.Err(t, checkSrc(t, `
		const int n = 1;
		int main() { n = 2; return 0; }
	`), ErrTypeMismatch)
	be.Err(t, checkSrc(t, `
		const int a[2] = {1, 2};
		int main() { a[0] = 3; return 0; }
	`), ErrTypeMismatch)
}

func TestAssignmentYieldsValue(t *testing.T) {
	src := `
		int main() {
			int x;
			int y;
			y = x = 5;
			return y;
		}
	`
	be.Err(t, checkSrc(t, src), nil)
}

func TestRecursionAllowed(t *testing.T) {
	src := `
		int fib(int n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
	`
	be.Err(t, checkSrc(t, src), nil)
}

func TestForwardCallRejected(t *testing.T) {
	src := `
		int main() { return later(); }
		int later() { return 1; }
	`
	be.Err(t, checkSrc(t, src), ErrUndefinedIdentifier)
}

func TestDimensionNotConstant(t *testing.T) {
	err := checkSrc(t, "int main() { int a[getint()]; return 0; }")
	be.Err(t, err, ErrNotConstant)
	be.Equal(t, CodeOf(err), "SYE0008")
}

func TestNegativeDimension(t *testing.T) {
	be.Err(t, checkSrc(t, "int a[-1];"), ErrNotConstant)
}

func TestConstInitNotConstant(t *testing.T) {
	be.Err(t, checkSrc(t, `
		int x;
		const int c = x;
	`), ErrNotConstant)
	be.Err(t, checkSrc(t, "const int c = getint();"), ErrNotConstant)
}

func TestConstFolding(t *testing.T) {
	u := mustParse(t, `
		const int n = 3 + 4;
		int a[n * 2];
	`)
	be.Err(t, Check(u), nil)

	cd, ok := u.Items[0].(*ast.ConstVarDef)
	be.True(t, ok)
	lit, ok := cd.Init.(*ast.IntLit)
	be.True(t, ok)
	be.Equal(t, lit.Value, 7)

	ad, ok := u.Items[1].(*ast.ArrayDef)
	be.True(t, ok)
	dim, ok := ad.Lens[0].(*ast.IntLit)
	be.True(t, ok)
	be.Equal(t, dim.Value, 14)
}

func TestConstArrayElementFolding(t *testing.T) {
	src := `
		const int t[2][3] = {{1, 2, 3}, {4, 5, 6}};
		const int x = t[1][2];
		int a[x];
	`
	u := mustParse(t, src)
	be.Err(t, Check(u), nil)

	cd, ok := u.Items[1].(*ast.ConstVarDef)
	be.True(t, ok)
	lit, ok := cd.Init.(*ast.IntLit)
	be.True(t, ok)
	be.Equal(t, lit.Value, 6)
}

func TestConstArrayMustBeFullyIndexed(t *testing.T) {
	be.Err(t, checkSrc(t, `
		const int t[2][3] = {{1, 2, 3}, {4, 5, 6}};
		const int x = t[1];
	`), ErrNotConstant)
}

func TestConstArrayIndexOutOfRange(t *testing.T) {
	be.Err(t, checkSrc(t, `
		const int t[2] = {1, 2};
		const int x = t[2];
	`), ErrNotConstant)
}

func TestDivisionByZeroNotConstant(t *testing.T) {
	be.Err(t, checkSrc(t, "const int x = 1 / 0;"), ErrNotConstant)
	be.Err(t, checkSrc(t, "const int x = 1 % 0;"), ErrNotConstant)
}

func TestPointerParamDims(t *testing.T) {
	src := `
		const int w = 3;
		int sum(int a[][w]) { return a[0][w - 1]; }
	`
	u := mustParse(t, src)
	be.Err(t, Check(u), nil)

	fd, ok := u.Items[1].(*ast.FuncDef)
	be.True(t, ok)
	pp, ok := fd.Params[0].(*ast.PointerParam)
	be.True(t, ok)
	dim, ok := pp.Dims[0].(*ast.IntLit)
	be.True(t, ok)
	be.Equal(t, dim.Value, 3)
}

func TestBodyDefinitionShadowsParameter(t *testing.T) {
	// parameters live in their own frame; the body block opens another
	be.Err(t, checkSrc(t, "int f(int n) { int n = 1; return n; }"), nil)
}

func TestDuplicateParameters(t *testing.T) {
	be.Err(t, checkSrc(t, "int f(int n, int n) { return n; }"), ErrDuplicateDefinition)
}

func TestIntrinsicCalls(t *testing.T) {
	src := `
		int buf[64];
		int main() {
			int n = getarray(buf);
			starttime();
			putarray(n, buf);
			putint(n);
			putch(10);
			stoptime();
			return getch();
		}
	`
	be.Err(t, checkSrc(t, src), nil)
}

func TestCheckIsIdempotent(t *testing.T) {
	u := mustParse(t, `
		const int n = 2 * 3;
		const int t[n] = {1, 2, 3};
		int f(int a[][n]) { return a[0][t[0]]; }
	`)
	be.Err(t, Check(u), nil)
	be.Err(t, Check(u), nil)
}

func TestRecheckFailureIsDeterministic(t *testing.T) {
	u := mustParse(t, `
		const int n = 2 + 2;
		int a[n];
		int main() { return absent; }
	`)
	first := Check(u)
	be.Err(t, first, ErrUndefinedIdentifier)
	second := Check(u)
	be.Err(t, second, ErrUndefinedIdentifier)
	be.Equal(t, second.Error(), first.Error())
}

func TestFailFastStopsAtFirstError(t *testing.T) {
	// both the duplicate and the undefined use are present; the
	// duplicate comes first in program order
	err := checkSrc(t, `
		int x;
		int x;
		int main() { return nope; }
	`)
	be.Err(t, err, ErrDuplicateDefinition)
}
