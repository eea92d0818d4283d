package codec

import (
	"errors"
	"strconv"
	"time"
	"unicode/utf8"
)

const (
	// LayoutZone is the time layout carrying a UTC offset.
	LayoutZone = "2006-01-02T15:04:05.0000000-07:00"
	// LayoutNoZone is the time layout used when the time zone is ignored.
	LayoutNoZone = "2006-01-02T15:04:05.0000000"
)

func ParseFloat[T float32 | float64](s string) (T, error) {
	v, err := strconv.ParseFloat(s, bitSizeFloat[T]())
	if err != nil {
		return 0, formatErr(typeName[T](), s, err)
	}
	return T(v), nil
}

func FormatFloat[T float32 | float64](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSizeFloat[T]())
}

func bitSizeFloat[T float32 | float64]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

// ParseBool parses the one byte integers 0 and 1.
func ParseBool(s string) (bool, error) {
	b, err := ParseUint[uint8](s)
	if err != nil {
		var fe *FormatError
		errors.As(err, &fe)
		return false, &FormatError{Type: "bool", Value: s, Err: fe.Err}
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, &FormatError{Type: "bool", Value: s}
}

func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

var errRuneCount = errors.New("expected exactly one character")

func ParseChar(s string) (rune, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) || (r == utf8.RuneError && n == 1) {
		return 0, &FormatError{Type: "char", Value: s, Err: errRuneCount}
	}
	return r, nil
}

func FormatChar(r rune) string {
	return string(r)
}

func timeLayout(ignoreTZ bool) string {
	if ignoreTZ {
		return LayoutNoZone
	}
	return LayoutZone
}

// ParseTime parses s with exactly one of the two layouts.
func ParseTime(s string, ignoreTZ bool) (time.Time, error) {
	t, err := time.Parse(timeLayout(ignoreTZ), s)
	if err != nil {
		return time.Time{}, &FormatError{Type: "time", Value: s, Err: err}
	}
	return t, nil
}

func FormatTime(t time.Time, ignoreTZ bool) string {
	return t.Format(timeLayout(ignoreTZ))
}
