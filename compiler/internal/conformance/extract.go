// Package conformance runs the markdown-driven language test suite.
// Suite files live in testdata/ and interleave prose with fenced code:
// a `sy` fence is the program under test, a `check-ok` fence asserts a
// clean check, and a `check-error` fence asserts failure with the named
// diagnostic code.
package conformance

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	fenceSource     = "sy"
	fenceCheckOK    = "check-ok"
	fenceCheckError = "check-error"
)

// Assertion is one expectation attached to a test case.
type Assertion struct {
	// WantCode is the expected diagnostic code ("SYE0003"). Empty means
	// the check must succeed.
	WantCode string
}

// TestCase is one named program plus its expectations, extracted from a
// suite file.
type TestCase struct {
	Name       string
	Source     string
	Assertions []Assertion
}

// ExtractTestCases parses a markdown suite document. A heading starting
// with "Test: " opens a case; the fences until the next such heading
// belong to it.
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	source := []byte(markdownContent)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []TestCase
	var cur *TestCase

	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Source == "" {
			return fmt.Errorf("test %q has no sy fence", cur.Name)
		}
		if len(cur.Assertions) == 0 {
			return fmt.Errorf("test %q has no check-ok or check-error fence", cur.Name)
		}
		cases = append(cases, *cur)
		cur = nil
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			heading := headingText(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}
			if err := flush(); err != nil {
				return ast.WalkStop, err
			}
			cur = &TestCase{Name: strings.TrimPrefix(heading, "Test: ")}

		case *ast.FencedCodeBlock:
			lang := string(n.Language(source))
			content := fenceContent(n, source)
			switch lang {
			case fenceSource:
				if cur == nil {
					return ast.WalkStop, fmt.Errorf("sy fence outside of a test case")
				}
				if cur.Source != "" {
					return ast.WalkStop, fmt.Errorf("test %q has multiple sy fences", cur.Name)
				}
				cur.Source = content
			case fenceCheckOK:
				if cur == nil {
					return ast.WalkStop, fmt.Errorf("check-ok fence outside of a test case")
				}
				cur.Assertions = append(cur.Assertions, Assertion{})
			case fenceCheckError:
				if cur == nil {
					return ast.WalkStop, fmt.Errorf("check-error fence outside of a test case")
				}
				code := strings.TrimSpace(content)
				if code == "" {
					return ast.WalkStop, fmt.Errorf("test %q: check-error fence needs a diagnostic code", cur.Name)
				}
				cur.Assertions = append(cur.Assertions, Assertion{WantCode: code})
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return cases, nil
}

func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(cb *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < cb.Lines().Len(); i++ {
		line := cb.Lines().At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}
