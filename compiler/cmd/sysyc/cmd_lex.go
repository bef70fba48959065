package main

import (
	"os"

	"github.com/sylang/sysyc/compiler/internal/lexer"
	"github.com/sylang/sysyc/compiler/internal/term"
)

/* ---------- lex ---------- */

func cmdLex(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		term.Eprintf("read %s: %v\n", path, err)
		return 1
	}
	lx := lexer.New(string(data))
	bad := 0
	for {
		t := lx.Next()
		if t.Kind == lexer.TokEOF {
			term.Printf("%d:%d  %s\n", t.Line, t.Col, t.Kind)
			break
		}
		if t.Kind == lexer.TokIllegal {
			bad++
		}
		if t.Lex == "" {
			term.Printf("%d:%d  %-8s\n", t.Line, t.Col, t.Kind)
		} else {
			term.Printf("%d:%d  %-8s  %q\n", t.Line, t.Col, t.Kind, t.Lex)
		}
	}
	if bad > 0 {
		term.Eprintf("%d illegal token(s)\n", bad)
		return 1
	}
	return 0
}
