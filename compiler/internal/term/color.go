package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorMode controls ANSI coloring of diagnostics.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// StderrIsTTY reports whether stderr is attached to a terminal.
func StderrIsTTY() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// UseColor resolves a ColorMode against the actual stderr.
func UseColor(m ColorMode) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return StderrIsTTY()
	}
}

// ErrorLine prints one diagnostic line to stderr, red when enabled.
func ErrorLine(color bool, format string, a ...any) {
	if color {
		Eprintf(ansiBold+ansiRed+"error:"+ansiReset+" "+format+"\n", a...)
		return
	}
	Eprintf("error: "+format+"\n", a...)
}
