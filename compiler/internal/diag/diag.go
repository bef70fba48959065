package diag

import "fmt"

// Pos marks a 1-based line/column location in a source file.
type Pos struct{ Line, Col int }

// Span marks a half-open range [Start, End) within a file.
type Span struct {
	Start Pos
	End   Pos
}

// Diagnostic is a compiler message with an optional span and catalog code.
type Diagnostic struct {
	Code string // e.g., "SYE0001"; may be empty
	Span Span
	Msg  string
}

func (d Diagnostic) Error() string {
	msg := d.Msg
	if d.Code != "" {
		msg = d.Code + ": " + msg
	}
	if d.Span.Start.Line == 0 {
		return msg
	}
	return fmt.Sprintf("%d:%d: %s", d.Span.Start.Line, d.Span.Start.Col, msg)
}
