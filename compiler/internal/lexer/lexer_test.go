package lexer

import (
	"testing"

	"github.com/nalgeon/be"
)

func kinds(src string) []TokKind {
	lx := New(src)
	var out []TokKind
	for {
		t := lx.Next()
		out = append(out, t.Kind)
		if t.Kind == TokEOF {
			return out
		}
	}
}

func TestEmptySource(t *testing.T) {
	be.Equal(t, kinds(""), []TokKind{TokEOF})
	be.Equal(t, kinds("   \n\t  "), []TokKind{TokEOF})
}

func TestKeywordsAndIdents(t *testing.T) {
	got := kinds("const int void if else while break continue return main x_1")
	be.Equal(t, got, []TokKind{
		TokConst, TokIntType, TokVoid, TokIf, TokElse, TokWhile,
		TokBreak, TokContinue, TokReturn, TokIdent, TokIdent, TokEOF,
	})
}

func TestOperators(t *testing.T) {
	got := kinds("= == ! != < <= > >= && || + - * / %")
	be.Equal(t, got, []TokKind{
		TokAssign, TokEqEq, TokBang, TokNe, TokLt, TokLe, TokGt, TokGe,
		TokAndAnd, TokOrOr, TokPlus, TokMinus, TokStar, TokSlash,
		TokPercent, TokEOF,
	})
}

func TestPunctuation(t *testing.T) {
	got := kinds("( ) [ ] { } , ;")
	be.Equal(t, got, []TokKind{
		TokLParen, TokRParen, TokLBrack, TokRBrack, TokLBrace, TokRBrace,
		TokComma, TokSemi, TokEOF,
	})
}

func TestNumbers(t *testing.T) {
	lx := New("0 42 0x1F 0777")
	for _, want := range []string{"0", "42", "0x1F", "0777"} {
		tok := lx.Next()
		be.Equal(t, tok.Kind, TokInt)
		be.Equal(t, tok.Lex, want)
	}
	be.Equal(t, lx.Next().Kind, TokEOF)
}

func TestComments(t *testing.T) {
	src := `
		// line comment with symbols: == { } ;
		int a; /* block
		spanning lines */ int b;
	`
	got := kinds(src)
	be.Equal(t, got, []TokKind{
		TokIntType, TokIdent, TokSemi, TokIntType, TokIdent, TokSemi, TokEOF,
	})
}

func TestUnterminatedBlockComment(t *testing.T) {
	be.Equal(t, kinds("int /* never closed"), []TokKind{TokIntType, TokEOF})
}

func TestAmpersandAloneIsIllegal(t *testing.T) {
	be.Equal(t, kinds("a & b"), []TokKind{TokIdent, TokIllegal, TokIdent, TokEOF})
	be.Equal(t, kinds("a | b"), []TokKind{TokIdent, TokIllegal, TokIdent, TokEOF})
}

func TestUnknownCharacter(t *testing.T) {
	lx := New("@")
	tok := lx.Next()
	be.Equal(t, tok.Kind, TokIllegal)
	be.Equal(t, tok.Lex, "@")
}

func TestPositions(t *testing.T) {
	lx := New("int\n  x;")
	tok := lx.Next()
	be.Equal(t, tok.Line, 1)
	be.Equal(t, tok.Col, 1)
	tok = lx.Next()
	be.Equal(t, tok.Kind, TokIdent)
	be.Equal(t, tok.Line, 2)
	be.Equal(t, tok.Col, 3)
}

func TestMaximalMunch(t *testing.T) {
	be.Equal(t, kinds("a<=b"), []TokKind{TokIdent, TokLe, TokIdent, TokEOF})
	be.Equal(t, kinds("a< =b"), []TokKind{TokIdent, TokLt, TokAssign, TokIdent, TokEOF})
}
