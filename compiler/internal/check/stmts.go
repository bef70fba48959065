package check

import (
	"fmt"

	"github.com/sylang/sysyc/compiler/internal/ast"
)

/* ---------- statements and blocks ---------- */

// processBlock checks every item of a block inside a fresh scope frame.
// returnsVoid records the return type of the enclosing function; inLoop
// records whether a while body encloses the block.
func (c *checker) processBlock(b *ast.Block, returnsVoid, inLoop bool) error {
	c.table.EnterScope()
	defer c.table.ExitScope()
	for _, item := range b.Items {
		if err := c.processBlockItem(item, returnsVoid, inLoop); err != nil {
			return err
		}
	}
	return nil
}

func (c *checker) processBlockItem(item ast.BlockItem, returnsVoid, inLoop bool) error {
	switch v := item.(type) {
	case ast.Definition:
		return c.processDefinition(v)

	case *ast.Block:
		return c.processBlock(v, returnsVoid, inLoop)

	case *ast.ExprStmt:
		_, err := exprType(v.X, c.table)
		return err

	case *ast.IfStmt:
		if err := c.checkCond(v.Cond); err != nil {
			return err
		}
		if err := c.processBlock(v.Then, returnsVoid, inLoop); err != nil {
			return err
		}
		if v.Else != nil {
			return c.processBlock(v.Else, returnsVoid, inLoop)
		}
		return nil

	case *ast.WhileStmt:
		if err := c.checkCond(v.Cond); err != nil {
			return err
		}
		return c.processBlock(v.Body, returnsVoid, true)

	case *ast.ReturnStmt:
		return c.checkReturn(v, returnsVoid)

	case *ast.BreakStmt:
		if !inLoop {
			return fmt.Errorf("%w: break outside of a loop", ErrIllegalJump)
		}
		return nil

	case *ast.ContinueStmt:
		if !inLoop {
			return fmt.Errorf("%w: continue outside of a loop", ErrIllegalJump)
		}
		return nil

	default:
		return fmt.Errorf("%w: unsupported statement", ErrTypeMismatch)
	}
}

func (c *checker) checkCond(cond ast.Expr) error {
	ty, err := exprType(cond, c.table)
	if err != nil {
		return err
	}
	if ty.IsVoid() {
		return fmt.Errorf("%w: condition %s has no value",
			ErrIllegalCondition, ast.ExprString(cond))
	}
	return nil
}

func (c *checker) checkReturn(r *ast.ReturnStmt, returnsVoid bool) error {
	if r.X == nil {
		if !returnsVoid {
			return fmt.Errorf("%w: return without a value in an int function",
				ErrMissingReturnValue)
		}
		return nil
	}
	if returnsVoid {
		return fmt.Errorf("%w: return with a value in a void function",
			ErrUnexpectedReturnValue)
	}
	ty, err := exprType(r.X, c.table)
	if err != nil {
		return err
	}
	if !ty.IsInt() {
		return fmt.Errorf("%w: returned %s is %s, not int",
			ErrTypeMismatch, ast.ExprString(r.X), ty)
	}
	return nil
}
