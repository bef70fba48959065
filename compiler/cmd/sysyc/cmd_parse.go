package main

import (
	"strings"

	"github.com/sylang/sysyc/compiler/internal/ast"
	"github.com/sylang/sysyc/compiler/internal/build"
	"github.com/sylang/sysyc/compiler/internal/term"
)

/* ---------- parse ---------- */

func cmdParse(args []string) int {
	var file string
	for _, s := range args {
		switch {
		case !strings.HasPrefix(s, "-") && file == "":
			file = s
		default:
			term.Eprintln("usage: sysyc parse <file.sy>")
			return 2
		}
	}
	if file == "" {
		term.Eprintln("usage: sysyc parse <file.sy>")
		return 2
	}

	u, err := build.LoadUnit(file)
	if err != nil {
		term.Eprintf("%v\n", err)
		return 1
	}
	term.Printf("%s", ast.DumpUnit(u))
	return 0
}
