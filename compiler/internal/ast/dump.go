package ast

import (
	"fmt"
	"strings"
)

/*** DUMP (pretty outline for CLI) ***/

func DumpUnit(u *TranslationUnit) string {
	var b strings.Builder
	for _, it := range u.Items {
		switch v := it.(type) {
		case Definition:
			fmt.Fprintf(&b, "%s\n", defString(v))
		case *FuncDef:
			fmt.Fprintf(&b, "\n%s %s(", retString(v.ReturnsVoid), v.Name)
			for i, p := range v.Params {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(paramString(p))
			}
			b.WriteString(")\n")
			dumpBlock(&b, v.Body, 1)
		}
	}
	return b.String()
}

func retString(void bool) string {
	if void {
		return "void"
	}
	return "int"
}

func paramString(p Param) string {
	switch v := p.(type) {
	case *IntParam:
		return "int " + v.Name
	case *PointerParam:
		s := "int " + v.Name + "[]"
		for _, d := range v.Dims {
			s += "[" + ExprString(d) + "]"
		}
		return s
	default:
		return "<param>"
	}
}

func defString(d Definition) string {
	switch v := d.(type) {
	case *ConstVarDef:
		return fmt.Sprintf("const int %s = %s", v.Name, ExprString(v.Init))
	case *VarDef:
		if v.Init == nil {
			return "int " + v.Name
		}
		return fmt.Sprintf("int %s = %s", v.Name, ExprString(v.Init))
	case *ConstArrayDef:
		return fmt.Sprintf("const int %s%s = %s", v.Name, lensString(v.Lens), initString(v.Init))
	case *ArrayDef:
		if v.Init == nil {
			return "int " + v.Name + lensString(v.Lens)
		}
		return fmt.Sprintf("int %s%s = %s", v.Name, lensString(v.Lens), initString(v.Init))
	default:
		return "<def>"
	}
}

func lensString(lens []Expr) string {
	var b strings.Builder
	for _, l := range lens {
		b.WriteString("[" + ExprString(l) + "]")
	}
	return b.String()
}

func initString(il *InitList) string {
	var parts []string
	for _, it := range il.Items {
		if it.List != nil {
			parts = append(parts, initString(it.List))
		} else {
			parts = append(parts, ExprString(it.Expr))
		}
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func dumpBlock(b *strings.Builder, blk *Block, depth int) {
	ind := strings.Repeat("  ", depth)
	for _, it := range blk.Items {
		switch v := it.(type) {
		case Definition:
			fmt.Fprintf(b, "%s%s\n", ind, defString(v))
		case *Block:
			fmt.Fprintf(b, "%sblock\n", ind)
			dumpBlock(b, v, depth+1)
		case *ExprStmt:
			fmt.Fprintf(b, "%s%s\n", ind, ExprString(v.X))
		case *IfStmt:
			fmt.Fprintf(b, "%sif %s\n", ind, ExprString(v.Cond))
			dumpBlock(b, v.Then, depth+1)
			if v.Else != nil {
				fmt.Fprintf(b, "%selse\n", ind)
				dumpBlock(b, v.Else, depth+1)
			}
		case *WhileStmt:
			fmt.Fprintf(b, "%swhile %s\n", ind, ExprString(v.Cond))
			dumpBlock(b, v.Body, depth+1)
		case *ReturnStmt:
			if v.X == nil {
				fmt.Fprintf(b, "%sreturn\n", ind)
			} else {
				fmt.Fprintf(b, "%sreturn %s\n", ind, ExprString(v.X))
			}
		case *BreakStmt:
			fmt.Fprintf(b, "%sbreak\n", ind)
		case *ContinueStmt:
			fmt.Fprintf(b, "%scontinue\n", ind)
		}
	}
}

// ExprString renders an expression as compact source-like text. Error
// messages use it to quote the offending fragment.
func ExprString(e Expr) string {
	switch v := e.(type) {
	case *IntLit:
		return fmt.Sprintf("%d", v.Value)
	case *LVal:
		s := v.Name
		for _, ix := range v.Indices {
			s += "[" + ExprString(ix) + "]"
		}
		return s
	case *UnaryExpr:
		return v.Op + ExprString(v.X)
	case *BinaryExpr:
		return "(" + ExprString(v.Left) + " " + v.Op + " " + ExprString(v.Right) + ")"
	case *CallExpr:
		var parts []string
		for _, a := range v.Args {
			parts = append(parts, ExprString(a))
		}
		return v.Callee + "(" + strings.Join(parts, ", ") + ")"
	case *AssignExpr:
		return ExprString(v.Target) + " = " + ExprString(v.Value)
	default:
		return "<expr>"
	}
}
