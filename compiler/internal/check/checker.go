// Package check implements the semantic pass that runs between parsing
// and any later consumer of the tree. It resolves names against a scope
// stack, types every expression, evaluates compile-time constants and
// folds them back into the tree, and enforces the flow rules for
// return, break and continue. Checking stops at the first violation.
package check

import (
	"fmt"

	"github.com/sylang/sysyc/compiler/internal/ast"
)

type checker struct {
	table *SymbolTable
}

// Check verifies a whole translation unit. On success the tree has all
// constant contexts folded to literals; on failure the returned error
// wraps one of the sentinel errors in this package and the tree may be
// partially folded.
func Check(u *ast.TranslationUnit) error {
	c := &checker{table: NewTable()}
	for _, item := range u.Items {
		switch v := item.(type) {
		case ast.Definition:
			if err := c.processDefinition(v); err != nil {
				return err
			}
		case *ast.FuncDef:
			if err := c.processFunc(v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unsupported top-level item", ErrTypeMismatch)
		}
	}
	return nil
}

// processFunc registers the function in the enclosing scope before its
// body is entered, so the body can call it recursively. Parameters get
// their own frame; the body block pushes another, so a body definition
// may shadow a parameter.
func (c *checker) processFunc(f *ast.FuncDef) error {
	ret := IntType()
	if f.ReturnsVoid {
		ret = VoidType()
	}

	params := make([]Type, len(f.Params))
	for i, p := range f.Params {
		switch pv := p.(type) {
		case *ast.IntParam:
			params[i] = IntType()
		case *ast.PointerParam:
			// Trailing dimensions are evaluated in the enclosing
			// scope, before the parameter itself is visible.
			dims := make([]int, len(pv.Dims))
			for j := range pv.Dims {
				n, err := evalAndFold(pv.Dims, j, c.table)
				if err != nil {
					return err
				}
				if n < 0 {
					return fmt.Errorf("%w: dimension of %s is %d, must be non-negative",
						ErrNotConstant, pv.Name, n)
				}
				dims[j] = n
			}
			params[i] = PointerType(dims)
		default:
			return fmt.Errorf("%w: unsupported parameter", ErrTypeMismatch)
		}
	}

	sig := &Function{Ret: ret, Params: params}
	if err := c.table.InsertDefinition(f.Name, sig); err != nil {
		return err
	}

	c.table.EnterScope()
	defer c.table.ExitScope()
	for i, p := range f.Params {
		var sym Symbol
		switch p.(type) {
		case *ast.IntParam:
			sym = &Variable{}
		case *ast.PointerParam:
			sym = &Pointer{Dims: params[i].Dims}
		}
		if err := c.table.InsertDefinition(p.ParamName(), sym); err != nil {
			return err
		}
	}
	return c.processBlock(f.Body, f.ReturnsVoid, false)
}
