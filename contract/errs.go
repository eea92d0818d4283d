package contract

import (
	"errors"
	"fmt"
)

var ErrContract = errors.New("contract error")

// Error reports a contract that can't be satisfied.
type Error struct {
	Type string
	Msg  string
}

func (e *Error) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %s", ErrContract, e.Msg)
	}
	return fmt.Sprintf("%s: type %s: %s", ErrContract, e.Type, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrContract
}

func errorf(typ, format string, args ...any) *Error {
	return &Error{Type: typ, Msg: fmt.Sprintf(format, args...)}
}
