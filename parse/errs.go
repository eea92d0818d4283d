package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/hrd-format/go-hrd/token"
)

var ErrParse = errors.New("parse error")

// Error is a parse failure at a position. Err is an *ir.StructuralError
// for grammar and shape violations, or a token sentinel error for
// lexical ones.
type Error struct {
	Pos *token.Pos
	Err error
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s: %s", ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: %s at %s", ErrParse, e.Err, e.Pos)
}

func (e *Error) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
