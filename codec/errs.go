package codec

import (
	"errors"
	"fmt"
)

var ErrFormat = errors.New("format error")

// FormatError reports a value that does not parse as Type.
type FormatError struct {
	Type  string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q is not a valid %s", ErrFormat, e.Value, e.Type)
	}
	return fmt.Sprintf("%s: %q is not a valid %s: %v", ErrFormat, e.Value, e.Type, e.Err)
}

func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}

func formatErr(typ, v string, err error) *FormatError {
	var ne interface{ Unwrap() error }
	if errors.As(err, &ne) {
		err = ne.Unwrap()
	}
	return &FormatError{Type: typ, Value: v, Err: err}
}
