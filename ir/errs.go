package ir

import (
	"errors"
	"fmt"
)

var (
	ErrStructure = errors.New("structural error")
	ErrNotFound  = errors.New("not found")
)

// StructuralError reports an operation inconsistent with the shape
// invariants of a document.
type StructuralError struct {
	Op   string
	Name string
	Msg  string
}

func (e *StructuralError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s %q: %s", ErrStructure, e.Op, e.Name, e.Msg)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", ErrStructure, e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrStructure, e.Msg)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructure
}

// NewStructuralError returns a *StructuralError for op with a formatted
// message.
func NewStructuralError(op, format string, args ...any) *StructuralError {
	return &StructuralError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
