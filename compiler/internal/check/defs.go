package check

import (
	"fmt"

	"github.com/sylang/sysyc/compiler/internal/ast"
)

/* ---------- definitions ---------- */

func (c *checker) processDefinition(d ast.Definition) error {
	switch v := d.(type) {
	case *ast.ConstVarDef:
		val, err := constEval(v.Init, c.table)
		if err != nil {
			return err
		}
		v.Init = &ast.IntLit{Value: val}
		return c.table.InsertDefinition(v.Name, &ConstScalar{Value: val})

	case *ast.VarDef:
		if v.Init != nil {
			ty, err := exprType(v.Init, c.table)
			if err != nil {
				return err
			}
			if !ty.IsInt() {
				return fmt.Errorf("%w: initializer %s is %s, not int",
					ErrTypeMismatch, ast.ExprString(v.Init), ty)
			}
		}
		return c.table.InsertDefinition(v.Name, &Variable{})

	case *ast.ConstArrayDef:
		dims, err := c.evalDims(v.Name, v.Lens)
		if err != nil {
			return err
		}
		// the parser always supplies an initializer; guard against
		// trees built by hand
		if v.Init == nil {
			return fmt.Errorf("%w: const array %s needs an initializer",
				ErrNotConstant, v.Name)
		}
		values := make([]int, product(dims))
		err = fillInit(dims, v.Init, func(it *ast.InitItem, pos int) error {
			val, err := constEval(it.Expr, c.table)
			if err != nil {
				return err
			}
			it.Expr = &ast.IntLit{Value: val}
			values[pos] = val
			return nil
		})
		if err != nil {
			return err
		}
		return c.table.InsertDefinition(v.Name, &ConstArray{Dims: dims, Values: values})

	case *ast.ArrayDef:
		dims, err := c.evalDims(v.Name, v.Lens)
		if err != nil {
			return err
		}
		if v.Init != nil {
			err := fillInit(dims, v.Init, func(it *ast.InitItem, _ int) error {
				ty, err := exprType(it.Expr, c.table)
				if err != nil {
					return err
				}
				if !ty.IsInt() {
					return fmt.Errorf("%w: element %s is %s, not int",
						ErrTypeMismatch, ast.ExprString(it.Expr), ty)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return c.table.InsertDefinition(v.Name, &Array{Dims: dims})

	default:
		return fmt.Errorf("%w: unsupported definition", ErrTypeMismatch)
	}
}

// evalDims resolves declared dimension lengths. Each length must be a
// non-negative compile-time constant; resolved lengths are folded back
// into the tree.
func (c *checker) evalDims(name string, lens []ast.Expr) ([]int, error) {
	dims := make([]int, len(lens))
	for i := range lens {
		n, err := evalAndFold(lens, i, c.table)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: length of %s is %d, must be non-negative",
				ErrNotConstant, name, n)
		}
		dims[i] = n
	}
	return dims, nil
}

// fillInit flattens a brace initializer against the declared dimensions,
// calling scalar once per written element with its flat position.
// Positions never written keep their zero default. A nested brace opens
// the next declared dimension, starting at the next sub-array boundary;
// elements beyond the declared shape and braces nested deeper than the
// declared rank are shape mismatches.
func fillInit(dims []int, il *ast.InitList, scalar func(it *ast.InitItem, pos int) error) error {
	var walk func(dims []int, il *ast.InitList, base int) error
	walk = func(dims []int, il *ast.InitList, base int) error {
		total := product(dims)
		pos := 0 // offset within [base, base+total)
		for i := range il.Items {
			it := &il.Items[i]
			if it.List != nil {
				if len(dims) <= 1 {
					return fmt.Errorf("%w: braces nested deeper than the declared rank",
						ErrShapeMismatch)
				}
				stride := product(dims[1:])
				if stride > 0 && pos%stride != 0 {
					pos = (pos/stride + 1) * stride
				}
				if pos+stride > total || (stride == 0 && pos >= total) {
					return fmt.Errorf("%w: too many elements for shape%s",
						ErrShapeMismatch, dimsString(dims))
				}
				if err := walk(dims[1:], it.List, base+pos); err != nil {
					return err
				}
				pos += stride
				continue
			}
			if pos >= total {
				return fmt.Errorf("%w: too many elements for shape%s",
					ErrShapeMismatch, dimsString(dims))
			}
			if err := scalar(it, base+pos); err != nil {
				return err
			}
			pos++
		}
		return nil
	}
	return walk(dims, il, 0)
}
