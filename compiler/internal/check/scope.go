package check

import "fmt"

// SymbolTable is an ordered stack of scope frames. Lookup scans from the
// innermost frame outward; insertion only ever touches the top frame, so
// an inner declaration may shadow any outer name, intrinsics included.
type SymbolTable struct {
	frames []map[string]Symbol
}

// NewTable returns a table whose global frame is pre-seeded with the
// built-in I/O and timing intrinsics, callable without declaration.
func NewTable() *SymbolTable {
	global := map[string]Symbol{
		"getint":    &Function{Ret: IntType()},
		"getch":     &Function{Ret: IntType()},
		"getarray":  &Function{Ret: IntType(), Params: []Type{PointerType(nil)}},
		"putint":    &Function{Ret: VoidType(), Params: []Type{IntType()}},
		"putch":     &Function{Ret: VoidType(), Params: []Type{IntType()}},
		"putarray":  &Function{Ret: IntType(), Params: []Type{IntType(), PointerType(nil)}},
		"starttime": &Function{Ret: VoidType()},
		"stoptime":  &Function{Ret: VoidType()},
	}
	return &SymbolTable{frames: []map[string]Symbol{global}}
}

// Search returns the nearest visible symbol for name.
func (t *SymbolTable) Search(name string) (Symbol, bool) {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if sym, ok := t.frames[i][name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// InsertDefinition binds name in the current (top) frame. Rebinding a
// name already present in that same frame is a duplicate definition.
func (t *SymbolTable) InsertDefinition(name string, sym Symbol) error {
	top := t.frames[len(t.frames)-1]
	if _, exists := top[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDefinition, name)
	}
	top[name] = sym
	return nil
}

func (t *SymbolTable) EnterScope() {
	t.frames = append(t.frames, map[string]Symbol{})
}

// ExitScope pops the top frame, discarding all bindings made in it.
func (t *SymbolTable) ExitScope() {
	t.frames = t.frames[:len(t.frames)-1]
}

// Depth reports the number of currently open frames.
func (t *SymbolTable) Depth() int { return len(t.frames) }
