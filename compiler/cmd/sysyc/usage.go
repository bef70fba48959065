package main

import "github.com/sylang/sysyc/compiler/internal/term"

func usage() {
	term.Eprintln("sysyc — SysY semantic checker")
	term.Eprintln("")
	term.Eprintln("Usage:")
	term.Eprintln("  sysyc <command> [args]")
	term.Eprintln("")
	term.Eprintln("Commands:")
	term.Eprintln("  version                                Print version")
	term.Eprintln("  help                                   Show this help")
	term.Eprintln("  lex <file.sy>                          Lex a source file and print tokens")
	term.Eprintln("  parse <file.sy>                        Parse a source file and print the tree outline")
	term.Eprintln("  check [--color=auto|always|never] [--dump-ast] [file.sy]")
	term.Eprintln("                                         Semantically check a source file")
	term.Eprintln("")
	term.Eprintln("Notes:")
	term.Eprintln("  - With no file argument, check reads the entry from the nearest sysy.yaml.")
	term.Eprintln("  - A failed check prints one diagnostic and exits non-zero.")
}
