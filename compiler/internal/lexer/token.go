package lexer

// TokKind enumerates token kinds produced by the lexer.
type TokKind int

const (
	// Special
	TokEOF TokKind = iota
	TokIllegal

	// Literals/identifiers
	TokIdent
	TokInt

	// Keywords
	TokConst
	TokIntType
	TokVoid
	TokIf
	TokElse
	TokWhile
	TokBreak
	TokContinue
	TokReturn

	// Operators/punctuation
	TokAssign  // =
	TokPlus    // +
	TokMinus   // -
	TokStar    // *
	TokSlash   // /
	TokPercent // %
	TokBang    // !
	TokLt      // <
	TokLe      // <=
	TokGt      // >
	TokGe      // >=
	TokEqEq    // ==
	TokNe      // !=
	TokAndAnd  // &&
	TokOrOr    // ||
	TokLParen  // (
	TokRParen  // )
	TokLBrack  // [
	TokRBrack  // ]
	TokLBrace  // {
	TokRBrace  // }
	TokComma   // ,
	TokSemi    // ;
)

var kindNames = map[TokKind]string{
	TokEOF:      "EOF",
	TokIllegal:  "ILLEGAL",
	TokIdent:    "IDENT",
	TokInt:      "INT",
	TokConst:    "const",
	TokIntType:  "int",
	TokVoid:     "void",
	TokIf:       "if",
	TokElse:     "else",
	TokWhile:    "while",
	TokBreak:    "break",
	TokContinue: "continue",
	TokReturn:   "return",
	TokAssign:   "=",
	TokPlus:     "+",
	TokMinus:    "-",
	TokStar:     "*",
	TokSlash:    "/",
	TokPercent:  "%",
	TokBang:     "!",
	TokLt:       "<",
	TokLe:       "<=",
	TokGt:       ">",
	TokGe:       ">=",
	TokEqEq:     "==",
	TokNe:       "!=",
	TokAndAnd:   "&&",
	TokOrOr:     "||",
	TokLParen:   "(",
	TokRParen:   ")",
	TokLBrack:   "[",
	TokRBrack:   "]",
	TokLBrace:   "{",
	TokRBrace:   "}",
	TokComma:    ",",
	TokSemi:     ";",
}

func (k TokKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is a single lexeme with source position.
type Token struct {
	Kind TokKind
	Lex  string
	Line int
	Col  int
}
