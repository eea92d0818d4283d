package codec

import (
	"time"

	"github.com/signadot/hrd-format/go-hrd/ir"
)

// Value returns the value of the attribute e stands for, checking that
// it is non-null and of the given quoting.
func Value(e *ir.Element, quoted bool) (string, error) {
	const op = "read"
	r := e.Resolve()
	if r.Kind != ir.AttributeKind {
		return "", &ir.StructuralError{Op: op, Name: e.Name, Msg: "element is a " + r.Kind.String() + ", not an attribute"}
	}
	if r.Value == nil {
		return "", &ir.StructuralError{Op: op, Name: e.Name, Msg: "value is null"}
	}
	if r.Quoted != quoted {
		if quoted {
			return "", &ir.StructuralError{Op: op, Name: e.Name, Msg: "expected a quoted value"}
		}
		return "", &ir.StructuralError{Op: op, Name: e.Name, Msg: "expected a bare value"}
	}
	return *r.Value, nil
}

func ReadInt[T Signed](e *ir.Element) (T, error) {
	s, err := Value(e, false)
	if err != nil {
		return 0, err
	}
	return ParseInt[T](s)
}

func ReadUint[T Unsigned](e *ir.Element) (T, error) {
	s, err := Value(e, false)
	if err != nil {
		return 0, err
	}
	return ParseUint[T](s)
}

func ReadFloat[T float32 | float64](e *ir.Element) (T, error) {
	s, err := Value(e, false)
	if err != nil {
		return 0, err
	}
	return ParseFloat[T](s)
}

func ReadBool(e *ir.Element) (bool, error) {
	s, err := Value(e, false)
	if err != nil {
		return false, err
	}
	return ParseBool(s)
}

func ReadChar(e *ir.Element) (rune, error) {
	s, err := Value(e, true)
	if err != nil {
		return 0, err
	}
	return ParseChar(s)
}

func ReadTime(e *ir.Element, ignoreTZ bool) (time.Time, error) {
	s, err := Value(e, false)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTime(s, ignoreTZ)
}

func ReadString(e *ir.Element) (string, error) {
	return Value(e, true)
}
