package diag

import (
	_ "embed"
	"encoding/json"
	"sync"
)

//go:embed codes.json
var codesJSON []byte

// CodeEntry is a single diagnostic code definition.
type CodeEntry struct {
	ID    string `json:"id"`    // e.g., "SYE0101"
	Title string `json:"title"` // short human title, e.g. "duplicate definition"
	Help  string `json:"help"`  // optional default help text
}

// Registry is the top-level catalog format, one section per pipeline stage.
type Registry struct {
	Lexer  map[string]CodeEntry `json:"lexer"`
	Parser map[string]CodeEntry `json:"parser"`
	Sema   map[string]CodeEntry `json:"sema"`
}

var (
	regOnce sync.Once
	reg     Registry
	regErr  error
)

func load() error {
	regOnce.Do(func() {
		if len(codesJSON) == 0 {
			regErr = nil // empty catalog is allowed
			return
		}
		regErr = json.Unmarshal(codesJSON, &reg)
	})
	return regErr
}

// Lookup returns a code entry by (domain, key).
// Domain is one of: "lexer", "parser", "sema".
func Lookup(domain, key string) (CodeEntry, bool) {
	if err := load(); err != nil {
		return CodeEntry{}, false
	}
	var section map[string]CodeEntry
	switch domain {
	case "lexer":
		section = reg.Lexer
	case "parser":
		section = reg.Parser
	case "sema":
		section = reg.Sema
	default:
		return CodeEntry{}, false
	}
	if section == nil {
		return CodeEntry{}, false
	}
	ce, ok := section[key]
	return ce, ok
}

// LookupSema is a convenience for the "sema" domain.
func LookupSema(key string) (CodeEntry, bool) { return Lookup("sema", key) }
