package lexer

import "unicode"

// Lexer scans Sy source into tokens. Whitespace is insignificant; // and
// /* */ comments are skipped. Unknown characters come back as TokIllegal
// so the parser owns all error reporting.
type Lexer struct {
	src []rune
	i   int

	line int
	col  int
}

func New(src string) *Lexer {
	return &Lexer{
		src:  []rune(src),
		line: 1,
		col:  0,
	}
}

func (lx *Lexer) make(kind TokKind, lex string, line, col int) Token {
	return Token{Kind: kind, Lex: lex, Line: line, Col: col}
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.i >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i], true
}

func (lx *Lexer) peek2() (rune, bool) {
	if lx.i+1 >= len(lx.src) {
		return 0, false
	}
	return lx.src[lx.i+1], true
}

func (lx *Lexer) advance() (rune, bool) {
	ch, ok := lx.peek()
	if !ok {
		return 0, false
	}
	lx.i++
	if ch == '\n' {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}
	return ch, true
}

func (lx *Lexer) match(expect rune) bool {
	ch, ok := lx.peek()
	if ok && ch == expect {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) atEOF() bool { return lx.i >= len(lx.src) }

// skipTrivia consumes whitespace and both comment forms. An unterminated
// block comment silently runs to EOF.
func (lx *Lexer) skipTrivia() {
	for {
		ch, ok := lx.peek()
		if !ok {
			return
		}
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			lx.advance()
			continue
		}
		if ch == '/' {
			if nxt, ok2 := lx.peek2(); ok2 && nxt == '/' {
				for {
					ch, ok := lx.peek()
					if !ok || ch == '\n' {
						break
					}
					lx.advance()
				}
				continue
			}
			if nxt, ok2 := lx.peek2(); ok2 && nxt == '*' {
				lx.advance() // '/'
				lx.advance() // '*'
				for {
					ch, ok := lx.peek()
					if !ok {
						return
					}
					if ch == '*' {
						if nxt, ok2 := lx.peek2(); ok2 && nxt == '/' {
							lx.advance()
							lx.advance()
							break
						}
					}
					lx.advance()
				}
				continue
			}
		}
		return
	}
}

// Next returns the next token. It never panics on user input.
func (lx *Lexer) Next() Token {
	lx.skipTrivia()

	startLine, startCol := lx.line, lx.col+1

	if lx.atEOF() {
		return lx.make(TokEOF, "", startLine, startCol)
	}

	// Identifiers / keywords
	if ch, ok := lx.peek(); ok && isIdentStart(ch) {
		lex := lx.scanIdent()
		if kind, ok := keywordKind(lex); ok {
			return lx.make(kind, lex, startLine, startCol)
		}
		return lx.make(TokIdent, lex, startLine, startCol)
	}

	// Numbers (decimal, octal 0..., hex 0x...)
	if ch, ok := lx.peek(); ok && unicode.IsDigit(ch) {
		lex := lx.scanNumber()
		return lx.make(TokInt, lex, startLine, startCol)
	}

	// Multi-char operators first
	if lx.match('=') {
		if lx.match('=') {
			return lx.make(TokEqEq, "==", startLine, startCol)
		}
		return lx.make(TokAssign, "=", startLine, startCol)
	}
	if lx.match('!') {
		if lx.match('=') {
			return lx.make(TokNe, "!=", startLine, startCol)
		}
		return lx.make(TokBang, "!", startLine, startCol)
	}
	if lx.match('<') {
		if lx.match('=') {
			return lx.make(TokLe, "<=", startLine, startCol)
		}
		return lx.make(TokLt, "<", startLine, startCol)
	}
	if lx.match('>') {
		if lx.match('=') {
			return lx.make(TokGe, ">=", startLine, startCol)
		}
		return lx.make(TokGt, ">", startLine, startCol)
	}
	if lx.match('&') {
		if lx.match('&') {
			return lx.make(TokAndAnd, "&&", startLine, startCol)
		}
		return lx.make(TokIllegal, "&", startLine, startCol)
	}
	if lx.match('|') {
		if lx.match('|') {
			return lx.make(TokOrOr, "||", startLine, startCol)
		}
		return lx.make(TokIllegal, "|", startLine, startCol)
	}

	// Single-char punctuation
	type punct struct {
		ch   rune
		kind TokKind
	}
	for _, p := range []punct{
		{'+', TokPlus}, {'-', TokMinus}, {'*', TokStar}, {'/', TokSlash},
		{'%', TokPercent}, {'(', TokLParen}, {')', TokRParen},
		{'[', TokLBrack}, {']', TokRBrack}, {'{', TokLBrace},
		{'}', TokRBrace}, {',', TokComma}, {';', TokSemi},
	} {
		if lx.match(p.ch) {
			return lx.make(p.kind, string(p.ch), startLine, startCol)
		}
	}

	// Unknown character: surface it, let the parser report.
	ch, _ := lx.advance()
	return lx.make(TokIllegal, string(ch), startLine, startCol)
}

/* ---------- scanning helpers ---------- */

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (lx *Lexer) scanIdent() string {
	start := lx.i
	for {
		r, ok := lx.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func (lx *Lexer) scanNumber() string {
	start := lx.i
	if ch, ok := lx.peek(); ok && ch == '0' {
		lx.advance()
		if ch2, ok2 := lx.peek(); ok2 && (ch2 == 'x' || ch2 == 'X') {
			lx.advance()
			for {
				r, ok := lx.peek()
				if !ok || !isHexDigit(r) {
					break
				}
				lx.advance()
			}
			return string(lx.src[start:lx.i])
		}
		// octal digits (or a lone '0') fall through to the decimal loop
	}
	for {
		r, ok := lx.peek()
		if !ok || !unicode.IsDigit(r) {
			break
		}
		lx.advance()
	}
	return string(lx.src[start:lx.i])
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// keywordKind maps identifiers to keyword tokens.
func keywordKind(s string) (TokKind, bool) {
	switch s {
	case "const":
		return TokConst, true
	case "int":
		return TokIntType, true
	case "void":
		return TokVoid, true
	case "if":
		return TokIf, true
	case "else":
		return TokElse, true
	case "while":
		return TokWhile, true
	case "break":
		return TokBreak, true
	case "continue":
		return TokContinue, true
	case "return":
		return TokReturn, true
	default:
		return 0, false
	}
}
