// Package build turns source files on disk into checked translation
// units. A program is a single .sy file; there is no import mechanism.
package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sylang/sysyc/compiler/internal/ast"
	"github.com/sylang/sysyc/compiler/internal/check"
	"github.com/sylang/sysyc/compiler/internal/parser"
)

// LoadUnit reads and parses one source file.
func LoadUnit(path string) (*ast.TranslationUnit, error) {
	if ext := filepath.Ext(path); ext != ".sy" {
		return nil, fmt.Errorf("%s: want a .sy file, got %q", path, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	u, err := parser.New(string(data)).ParseUnit()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return u, nil
}

// CheckFile loads, parses and semantically checks one source file. On
// success the returned tree has constant contexts folded to literals.
func CheckFile(path string) (*ast.TranslationUnit, error) {
	u, err := LoadUnit(path)
	if err != nil {
		return nil, err
	}
	if err := check.Check(u); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}
