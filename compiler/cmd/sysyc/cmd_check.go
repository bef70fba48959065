package main

import (
	"os"
	"strings"

	"github.com/sylang/sysyc/compiler/internal/ast"
	"github.com/sylang/sysyc/compiler/internal/build"
	"github.com/sylang/sysyc/compiler/internal/check"
	"github.com/sylang/sysyc/compiler/internal/diag"
	"github.com/sylang/sysyc/compiler/internal/project"
	"github.com/sylang/sysyc/compiler/internal/term"
)

/* ---------- check ---------- */

func cmdCheck(args []string) int {
	mode := term.ColorAuto
	modeSet := false
	dumpAST := false
	dumpSet := false
	var file string

	for _, s := range args {
		switch {
		case s == "--color=auto":
			mode, modeSet = term.ColorAuto, true
		case s == "--color=always":
			mode, modeSet = term.ColorAlways, true
		case s == "--color=never":
			mode, modeSet = term.ColorNever, true
		case s == "--dump-ast":
			dumpAST, dumpSet = true, true
		case !strings.HasPrefix(s, "-") && file == "":
			file = s
		default:
			term.Eprintln("usage: sysyc check [--color=auto|always|never] [--dump-ast] [file.sy]")
			return 2
		}
	}

	// Without a file argument the nearest sysy.yaml names the entry and
	// the defaults; explicit flags still win.
	if file == "" {
		cwd, err := os.Getwd()
		if err != nil {
			term.Eprintf("%v\n", err)
			return 1
		}
		cfgPath, err := project.FindConfig(cwd)
		if err != nil {
			term.Eprintf("%v\n", err)
			return 1
		}
		if cfgPath == "" {
			term.Eprintln("no file argument and no sysy.yaml found")
			return 2
		}
		cfg, err := project.LoadConfig(cfgPath)
		if err != nil {
			term.Eprintf("%v\n", err)
			return 1
		}
		file = cfg.EntryPath(cfgPath)
		if !modeSet {
			mode = colorMode(cfg.Color)
		}
		if !dumpSet {
			dumpAST = cfg.DumpAST
		}
	}

	u, err := build.CheckFile(file)
	if err != nil {
		d := diag.Diagnostic{Code: check.CodeOf(err), Msg: err.Error()}
		term.ErrorLine(term.UseColor(mode), "%s", d.Error())
		return 1
	}
	if dumpAST {
		term.Printf("%s", ast.DumpUnit(u))
	} else {
		term.Printf("ok\n")
	}
	return 0
}

func colorMode(s string) term.ColorMode {
	switch s {
	case "always":
		return term.ColorAlways
	case "never":
		return term.ColorNever
	default:
		return term.ColorAuto
	}
}
