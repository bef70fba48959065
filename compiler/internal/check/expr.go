package check

import (
	"fmt"

	"github.com/sylang/sysyc/compiler/internal/ast"
)

/* ---------- expression typing ---------- */

// exprType infers the value type of e against the visible scopes.
func exprType(e ast.Expr, t *SymbolTable) (Type, error) {
	switch v := e.(type) {
	case *ast.IntLit:
		return IntType(), nil

	case *ast.LVal:
		return lvalType(v, t)

	case *ast.UnaryExpr:
		xt, err := exprType(v.X, t)
		if err != nil {
			return Type{}, err
		}
		if !xt.IsInt() {
			return Type{}, fmt.Errorf("%w: operand of %q is %s, not int", ErrTypeMismatch, v.Op, xt)
		}
		return IntType(), nil

	case *ast.BinaryExpr:
		lt, err := exprType(v.Left, t)
		if err != nil {
			return Type{}, err
		}
		rt, err := exprType(v.Right, t)
		if err != nil {
			return Type{}, err
		}
		if !lt.IsInt() || !rt.IsInt() {
			return Type{}, fmt.Errorf("%w: operands of %q must be int, got %s and %s",
				ErrTypeMismatch, v.Op, lt, rt)
		}
		return IntType(), nil

	case *ast.CallExpr:
		return callType(v, t)

	case *ast.AssignExpr:
		return assignType(v, t)

	default:
		return Type{}, fmt.Errorf("%w: unsupported expression", ErrTypeMismatch)
	}
}

// lvalType resolves a name plus indices to a value type, decaying array
// shapes to pointers as indices are consumed.
func lvalType(v *ast.LVal, t *SymbolTable) (Type, error) {
	sym, ok := t.Search(v.Name)
	if !ok {
		return Type{}, fmt.Errorf("%w: %s", ErrUndefinedIdentifier, v.Name)
	}
	for _, ix := range v.Indices {
		it, err := exprType(ix, t)
		if err != nil {
			return Type{}, err
		}
		if !it.IsInt() {
			return Type{}, fmt.Errorf("%w: index %s is %s, not int",
				ErrTypeMismatch, ast.ExprString(ix), it)
		}
	}
	k := len(v.Indices)
	switch s := sym.(type) {
	case *ConstScalar, *Variable:
		if k != 0 {
			return Type{}, fmt.Errorf("%w: %s is a scalar and cannot be indexed",
				ErrTypeMismatch, v.Name)
		}
		return IntType(), nil
	case *ConstArray:
		return indexArray(v, s.Dims, k)
	case *Array:
		return indexArray(v, s.Dims, k)
	case *Pointer:
		// one leading indirection plus the trailing dimensions
		switch {
		case k == 0:
			return PointerType(s.Dims), nil
		case k == len(s.Dims)+1:
			return IntType(), nil
		case k <= len(s.Dims):
			return PointerType(s.Dims[k:]), nil
		default:
			return Type{}, fmt.Errorf("%w: %s indexed %d times but has rank %d",
				ErrTypeMismatch, v.Name, k, len(s.Dims)+1)
		}
	case *Function:
		return Type{}, fmt.Errorf("%w: function %s used as a value", ErrTypeMismatch, v.Name)
	default:
		return Type{}, fmt.Errorf("%w: %s", ErrTypeMismatch, v.Name)
	}
}

// indexArray types k applied indices against an array of the given
// dimensions. A partially indexed array decays to a pointer whose
// leading remaining dimension is erased.
func indexArray(v *ast.LVal, dims []int, k int) (Type, error) {
	switch {
	case k == len(dims):
		return IntType(), nil
	case k < len(dims):
		return PointerType(dims[k+1:]), nil
	default:
		return Type{}, fmt.Errorf("%w: %s indexed %d times but has rank %d",
			ErrTypeMismatch, v.Name, k, len(dims))
	}
}

func callType(v *ast.CallExpr, t *SymbolTable) (Type, error) {
	sym, ok := t.Search(v.Callee)
	if !ok {
		return Type{}, fmt.Errorf("%w: %s", ErrUndefinedIdentifier, v.Callee)
	}
	fn, ok := sym.(*Function)
	if !ok {
		return Type{}, fmt.Errorf("%w: %s is not a function", ErrTypeMismatch, v.Callee)
	}
	if len(v.Args) != len(fn.Params) {
		return Type{}, fmt.Errorf("%w: call to %s needs %d arguments, got %d",
			ErrTypeMismatch, v.Callee, len(fn.Params), len(v.Args))
	}
	for i, a := range v.Args {
		at, err := exprType(a, t)
		if err != nil {
			return Type{}, err
		}
		if !at.Equal(fn.Params[i]) {
			return Type{}, fmt.Errorf("%w: argument %d of %s is %s, want %s",
				ErrTypeMismatch, i+1, v.Callee, at, fn.Params[i])
		}
	}
	return fn.Ret, nil
}

func assignType(v *ast.AssignExpr, t *SymbolTable) (Type, error) {
	if sym, ok := t.Search(v.Target.Name); ok {
		switch sym.(type) {
		case *ConstScalar, *ConstArray:
			return Type{}, fmt.Errorf("%w: cannot assign to constant %s",
				ErrTypeMismatch, v.Target.Name)
		}
	}
	tt, err := lvalType(v.Target, t)
	if err != nil {
		return Type{}, err
	}
	if !tt.IsInt() {
		return Type{}, fmt.Errorf("%w: assignment target %s is %s, not int",
			ErrTypeMismatch, ast.ExprString(v.Target), tt)
	}
	vt, err := exprType(v.Value, t)
	if err != nil {
		return Type{}, err
	}
	if !vt.IsInt() {
		return Type{}, fmt.Errorf("%w: assigned value %s is %s, not int",
			ErrTypeMismatch, ast.ExprString(v.Value), vt)
	}
	return IntType(), nil
}

/* ---------- constant evaluation ---------- */

// constEval reduces e to a compile-time integer, or fails with
// ErrNotConstant when the expression reads anything mutable, calls a
// function, or cannot be computed.
func constEval(e ast.Expr, t *SymbolTable) (int, error) {
	switch v := e.(type) {
	case *ast.IntLit:
		return v.Value, nil

	case *ast.LVal:
		return constEvalLVal(v, t)

	case *ast.UnaryExpr:
		x, err := constEval(v.X, t)
		if err != nil {
			return 0, err
		}
		switch v.Op {
		case "+":
			return x, nil
		case "-":
			return -x, nil
		case "!":
			return boolToInt(x == 0), nil
		default:
			return 0, fmt.Errorf("%w: operator %q", ErrNotConstant, v.Op)
		}

	case *ast.BinaryExpr:
		l, err := constEval(v.Left, t)
		if err != nil {
			return 0, err
		}
		r, err := constEval(v.Right, t)
		if err != nil {
			return 0, err
		}
		return applyBinary(v.Op, l, r)

	case *ast.CallExpr:
		return 0, fmt.Errorf("%w: call to %s is not a compile-time constant",
			ErrNotConstant, v.Callee)

	case *ast.AssignExpr:
		return 0, fmt.Errorf("%w: assignment is not a compile-time constant", ErrNotConstant)

	default:
		return 0, fmt.Errorf("%w: %s", ErrNotConstant, ast.ExprString(e))
	}
}

func constEvalLVal(v *ast.LVal, t *SymbolTable) (int, error) {
	sym, ok := t.Search(v.Name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedIdentifier, v.Name)
	}
	switch s := sym.(type) {
	case *ConstScalar:
		if len(v.Indices) != 0 {
			return 0, fmt.Errorf("%w: %s is a scalar constant and cannot be indexed",
				ErrNotConstant, v.Name)
		}
		return s.Value, nil
	case *ConstArray:
		if len(v.Indices) != len(s.Dims) {
			return 0, fmt.Errorf("%w: %s must be fully indexed to be a constant",
				ErrNotConstant, ast.ExprString(v))
		}
		flat := 0
		for i, ix := range v.Indices {
			n, err := constEval(ix, t)
			if err != nil {
				return 0, err
			}
			if n < 0 || n >= s.Dims[i] {
				return 0, fmt.Errorf("%w: index %d out of range [0, %d)",
					ErrNotConstant, n, s.Dims[i])
			}
			flat = flat*s.Dims[i] + n
		}
		return s.Values[flat], nil
	default:
		return 0, fmt.Errorf("%w: %s is not a constant", ErrNotConstant, v.Name)
	}
}

func applyBinary(op string, l, r int) (int, error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrNotConstant)
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return 0, fmt.Errorf("%w: modulo by zero", ErrNotConstant)
		}
		return l % r, nil
	case "<":
		return boolToInt(l < r), nil
	case "<=":
		return boolToInt(l <= r), nil
	case ">":
		return boolToInt(l > r), nil
	case ">=":
		return boolToInt(l >= r), nil
	case "==":
		return boolToInt(l == r), nil
	case "!=":
		return boolToInt(l != r), nil
	case "&&":
		return boolToInt(l != 0 && r != 0), nil
	case "||":
		return boolToInt(l != 0 || r != 0), nil
	default:
		return 0, fmt.Errorf("%w: operator %q", ErrNotConstant, op)
	}
}

// evalAndFold const-evaluates exprs[i] and folds the result back into
// the tree as a literal. Later passes then read a plain number where a
// constant expression used to be.
func evalAndFold(exprs []ast.Expr, i int, t *SymbolTable) (int, error) {
	v, err := constEval(exprs[i], t)
	if err != nil {
		return 0, err
	}
	exprs[i] = &ast.IntLit{Value: v}
	return v, nil
}
