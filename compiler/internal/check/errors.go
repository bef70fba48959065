package check

import (
	"errors"

	"github.com/sylang/sysyc/compiler/internal/diag"
)

// The semantic error taxonomy. Every failure out of this package wraps
// exactly one of these sentinels, so callers can classify with errors.Is
// while the message carries the offending fragment.
var (
	ErrDuplicateDefinition   = errors.New("duplicate definition in current scope")
	ErrUndefinedIdentifier   = errors.New("undefined identifier")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrIllegalCondition      = errors.New("void expression used as condition")
	ErrIllegalJump           = errors.New("break or continue outside a loop")
	ErrMissingReturnValue    = errors.New("int function returns without a value")
	ErrUnexpectedReturnValue = errors.New("void function returns a value")
	ErrNotConstant           = errors.New("constant expression required")
	ErrShapeMismatch         = errors.New("initializer does not match declared shape")
)

func catalogKey(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateDefinition):
		return "duplicate_definition"
	case errors.Is(err, ErrUndefinedIdentifier):
		return "undefined_identifier"
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, ErrIllegalCondition):
		return "illegal_condition"
	case errors.Is(err, ErrIllegalJump):
		return "illegal_jump"
	case errors.Is(err, ErrMissingReturnValue):
		return "missing_return_value"
	case errors.Is(err, ErrUnexpectedReturnValue):
		return "unexpected_return_value"
	case errors.Is(err, ErrNotConstant):
		return "not_constant"
	case errors.Is(err, ErrShapeMismatch):
		return "shape_mismatch"
	default:
		return ""
	}
}

// CodeOf resolves a semantic error to its diagnostic catalog code
// ("SYE0001" etc.), or "" for errors outside the taxonomy.
func CodeOf(err error) string {
	key := catalogKey(err)
	if key == "" {
		return ""
	}
	ce, ok := diag.LookupSema(key)
	if !ok {
		return ""
	}
	return ce.ID
}
