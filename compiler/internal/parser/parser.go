package parser

import (
	"fmt"
	"strconv"

	"github.com/sylang/sysyc/compiler/internal/ast"
	"github.com/sylang/sysyc/compiler/internal/lexer"
)

type Parser struct {
	lx  *lexer.Lexer
	tok lexer.Token
}

func New(src string) *Parser {
	p := &Parser{lx: lexer.New(src)}
	p.next()
	return p
}

func (p *Parser) next()                   { p.tok = p.lx.Next() }
func (p *Parser) at(k lexer.TokKind) bool { return p.tok.Kind == k }
func (p *Parser) accept(k lexer.TokKind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}
func (p *Parser) expect(k lexer.TokKind) (lexer.Token, error) {
	if !p.at(k) {
		return p.tok, fmt.Errorf("expected %v, got %v at %d:%d", k, p.tok.Kind, p.tok.Line, p.tok.Col)
	}
	t := p.tok
	p.next()
	return t, nil
}

// ParseUnit parses a whole source file.
func (p *Parser) ParseUnit() (*ast.TranslationUnit, error) {
	u := &ast.TranslationUnit{}
	for !p.at(lexer.TokEOF) {
		switch {
		case p.at(lexer.TokConst):
			defs, err := p.parseConstDecl()
			if err != nil {
				return nil, err
			}
			for _, d := range defs {
				u.Items = append(u.Items, d)
			}
		case p.at(lexer.TokVoid):
			p.next()
			name, err := p.expect(lexer.TokIdent)
			if err != nil {
				return nil, err
			}
			fn, err := p.parseFuncRest(true, name.Lex)
			if err != nil {
				return nil, err
			}
			u.Items = append(u.Items, fn)
		case p.at(lexer.TokIntType):
			p.next()
			name, err := p.expect(lexer.TokIdent)
			if err != nil {
				return nil, err
			}
			if p.at(lexer.TokLParen) {
				fn, err := p.parseFuncRest(false, name.Lex)
				if err != nil {
					return nil, err
				}
				u.Items = append(u.Items, fn)
				break
			}
			defs, err := p.parseVarDeclRest(name.Lex)
			if err != nil {
				return nil, err
			}
			for _, d := range defs {
				u.Items = append(u.Items, d)
			}
		default:
			return nil, fmt.Errorf("expected declaration, got %v at %d:%d", p.tok.Kind, p.tok.Line, p.tok.Col)
		}
	}
	return u, nil
}

/* ---------- declarations ---------- */

// parseConstDecl parses `const int` declarator (',' declarator)* ';'.
func (p *Parser) parseConstDecl() ([]ast.Definition, error) {
	if _, err := p.expect(lexer.TokConst); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokIntType); err != nil {
		return nil, err
	}
	var defs []ast.Definition
	for {
		name, err := p.expect(lexer.TokIdent)
		if err != nil {
			return nil, err
		}
		lens, err := p.parseDims()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokAssign); err != nil {
			return nil, err
		}
		if len(lens) == 0 {
			init, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			defs = append(defs, &ast.ConstVarDef{Name: name.Lex, Init: init})
		} else {
			il, err := p.parseInitList()
			if err != nil {
				return nil, err
			}
			defs = append(defs, &ast.ConstArrayDef{Name: name.Lex, Lens: lens, Init: il})
		}
		if p.accept(lexer.TokComma) {
			continue
		}
		if _, err := p.expect(lexer.TokSemi); err != nil {
			return nil, err
		}
		return defs, nil
	}
}

// parseVarDeclRest continues an `int` declaration after its first name
// has been consumed (the caller needed the name to rule out a function).
func (p *Parser) parseVarDeclRest(first string) ([]ast.Definition, error) {
	var defs []ast.Definition
	name := first
	for {
		lens, err := p.parseDims()
		if err != nil {
			return nil, err
		}
		def, err := p.finishVarDeclarator(name, lens)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
		if p.accept(lexer.TokComma) {
			t, err := p.expect(lexer.TokIdent)
			if err != nil {
				return nil, err
			}
			name = t.Lex
			continue
		}
		if _, err := p.expect(lexer.TokSemi); err != nil {
			return nil, err
		}
		return defs, nil
	}
}

func (p *Parser) finishVarDeclarator(name string, lens []ast.Expr) (ast.Definition, error) {
	if len(lens) == 0 {
		if p.accept(lexer.TokAssign) {
			init, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			return &ast.VarDef{Name: name, Init: init}, nil
		}
		return &ast.VarDef{Name: name}, nil
	}
	if p.accept(lexer.TokAssign) {
		il, err := p.parseInitList()
		if err != nil {
			return nil, err
		}
		return &ast.ArrayDef{Name: name, Lens: lens, Init: il}, nil
	}
	return &ast.ArrayDef{Name: name, Lens: lens}, nil
}

// parseDims parses ('[' exp ']')*.
func (p *Parser) parseDims() ([]ast.Expr, error) {
	var lens []ast.Expr
	for p.accept(lexer.TokLBrack) {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRBrack); err != nil {
			return nil, err
		}
		lens = append(lens, e)
	}
	return lens, nil
}

// parseInitList parses '{' (item (',' item)*)? '}' where an item is an
// expression or a nested list.
func (p *Parser) parseInitList() (*ast.InitList, error) {
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	il := &ast.InitList{}
	if p.accept(lexer.TokRBrace) {
		return il, nil
	}
	for {
		if p.at(lexer.TokLBrace) {
			nested, err := p.parseInitList()
			if err != nil {
				return nil, err
			}
			il.Items = append(il.Items, ast.InitItem{List: nested})
		} else {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			il.Items = append(il.Items, ast.InitItem{Expr: e})
		}
		if p.accept(lexer.TokComma) {
			continue
		}
		if _, err := p.expect(lexer.TokRBrace); err != nil {
			return nil, err
		}
		return il, nil
	}
}

/* ---------- functions ---------- */

func (p *Parser) parseFuncRest(returnsVoid bool, name string) (*ast.FuncDef, error) {
	if _, err := p.expect(lexer.TokLParen); err != nil {
		return nil, err
	}
	var params []ast.Param
	if !p.accept(lexer.TokRParen) {
		for {
			prm, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			params = append(params, prm)
			if p.accept(lexer.TokComma) {
				continue
			}
			if _, err := p.expect(lexer.TokRParen); err != nil {
				return nil, err
			}
			break
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{
		ReturnsVoid: returnsVoid,
		Name:        name,
		Params:      params,
		Body:        body,
	}, nil
}

// parseParam parses `int name` or `int name [] ('[' exp ']')*`.
func (p *Parser) parseParam() (ast.Param, error) {
	if _, err := p.expect(lexer.TokIntType); err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.TokIdent)
	if err != nil {
		return nil, err
	}
	if !p.accept(lexer.TokLBrack) {
		return &ast.IntParam{Name: name.Lex}, nil
	}
	// leading dimension is always empty: the array decays to a pointer
	if _, err := p.expect(lexer.TokRBrack); err != nil {
		return nil, err
	}
	dims, err := p.parseDims()
	if err != nil {
		return nil, err
	}
	return &ast.PointerParam{Name: name.Lex, Dims: dims}, nil
}

/* ---------- blocks & statements ---------- */

func (p *Parser) parseBlock() (*ast.Block, error) {
	if _, err := p.expect(lexer.TokLBrace); err != nil {
		return nil, err
	}
	blk := &ast.Block{}
	for !p.at(lexer.TokRBrace) {
		if p.at(lexer.TokEOF) {
			return nil, fmt.Errorf("unexpected EOF: unclosed block at %d:%d", p.tok.Line, p.tok.Col)
		}
		switch {
		case p.at(lexer.TokConst):
			defs, err := p.parseConstDecl()
			if err != nil {
				return nil, err
			}
			for _, d := range defs {
				blk.Items = append(blk.Items, d)
			}
		case p.at(lexer.TokIntType):
			p.next()
			name, err := p.expect(lexer.TokIdent)
			if err != nil {
				return nil, err
			}
			defs, err := p.parseVarDeclRest(name.Lex)
			if err != nil {
				return nil, err
			}
			for _, d := range defs {
				blk.Items = append(blk.Items, d)
			}
		case p.at(lexer.TokLBrace):
			nested, err := p.parseBlock()
			if err != nil {
				return nil, err
			}
			blk.Items = append(blk.Items, nested)
		case p.accept(lexer.TokSemi):
			// empty statement
		default:
			s, err := p.parseStmt()
			if err != nil {
				return nil, err
			}
			blk.Items = append(blk.Items, s)
		}
	}
	p.next() // consume '}'
	return blk, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.accept(lexer.TokIf):
		if _, err := p.expect(lexer.TokLParen); err != nil {
			return nil, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		then, err := p.parseBranch()
		if err != nil {
			return nil, err
		}
		var els *ast.Block
		if p.accept(lexer.TokElse) {
			els, err = p.parseBranch()
			if err != nil {
				return nil, err
			}
		}
		return &ast.IfStmt{Cond: cond, Then: then, Else: els}, nil

	case p.accept(lexer.TokWhile):
		if _, err := p.expect(lexer.TokLParen); err != nil {
			return nil, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		body, err := p.parseBranch()
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Cond: cond, Body: body}, nil

	case p.accept(lexer.TokReturn):
		if p.accept(lexer.TokSemi) {
			return &ast.ReturnStmt{}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokSemi); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{X: e}, nil

	case p.accept(lexer.TokBreak):
		if _, err := p.expect(lexer.TokSemi); err != nil {
			return nil, err
		}
		return &ast.BreakStmt{}, nil

	case p.accept(lexer.TokContinue):
		if _, err := p.expect(lexer.TokSemi); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{}, nil

	default:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokSemi); err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: e}, nil
	}
}

// parseBranch parses an if/while branch and normalizes a single
// statement into a one-item block so downstream passes only see blocks.
func (p *Parser) parseBranch() (*ast.Block, error) {
	if p.at(lexer.TokLBrace) {
		return p.parseBlock()
	}
	if p.accept(lexer.TokSemi) {
		return &ast.Block{}, nil
	}
	s, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return &ast.Block{Items: []ast.BlockItem{s}}, nil
}

/* ---------- expressions ---------- */

// parseExpr parses an assignment expression: assignment binds loosest
// and associates to the right; everything else is precedence climbing.
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.TokAssign) {
		return left, nil
	}
	target, ok := left.(*ast.LVal)
	if !ok {
		return nil, fmt.Errorf("assignment target is not an lvalue at %d:%d", p.tok.Line, p.tok.Col)
	}
	p.next() // consume '='
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpr{Target: target, Value: value}, nil
}

// binaryPrec returns the precedence of a binary operator token, or 0.
func binaryPrec(k lexer.TokKind) int {
	switch k {
	case lexer.TokOrOr:
		return 1
	case lexer.TokAndAnd:
		return 2
	case lexer.TokEqEq, lexer.TokNe:
		return 3
	case lexer.TokLt, lexer.TokLe, lexer.TokGt, lexer.TokGe:
		return 4
	case lexer.TokPlus, lexer.TokMinus:
		return 5
	case lexer.TokStar, lexer.TokSlash, lexer.TokPercent:
		return 6
	default:
		return 0
	}
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec := binaryPrec(p.tok.Kind)
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		op := p.tok.Lex
		p.next()
		right, err := p.parseBinary(prec + 1) // left-associative
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.tok.Kind {
	case lexer.TokPlus, lexer.TokMinus, lexer.TokBang:
		op := p.tok.Lex
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, X: x}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch {
	case p.at(lexer.TokInt):
		t := p.tok
		p.next()
		// base 0 handles decimal, 0x hex, and leading-zero octal
		v, err := strconv.ParseInt(t.Lex, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("bad integer literal %q at %d:%d", t.Lex, t.Line, t.Col)
		}
		return &ast.IntLit{Value: int(v)}, nil

	case p.at(lexer.TokIdent):
		t := p.tok
		p.next()
		if p.accept(lexer.TokLParen) {
			var args []ast.Expr
			if !p.accept(lexer.TokRParen) {
				for {
					a, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					args = append(args, a)
					if p.accept(lexer.TokComma) {
						continue
					}
					if _, err := p.expect(lexer.TokRParen); err != nil {
						return nil, err
					}
					break
				}
			}
			return &ast.CallExpr{Callee: t.Lex, Args: args}, nil
		}
		indices, err := p.parseDims()
		if err != nil {
			return nil, err
		}
		return &ast.LVal{Name: t.Lex, Indices: indices}, nil

	case p.accept(lexer.TokLParen):
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokRParen); err != nil {
			return nil, err
		}
		return e, nil

	default:
		return nil, fmt.Errorf("expected expression, got %v at %d:%d", p.tok.Kind, p.tok.Line, p.tok.Col)
	}
}
