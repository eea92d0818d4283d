package codec

import (
	"strconv"
	"strings"
)

type Signed interface {
	int8 | int16 | int32 | int64
}

type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

func bitSize[T Signed | Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	}
	return 64
}

func typeName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	}
	return "value"
}

// cutHex splits an optional sign from a 0x prefixed hex literal.
func cutHex(s string) (sign, digits string, ok bool) {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return sign, s[2:], true
	}
	return "", "", false
}

// ParseInt parses a decimal or 0x prefixed hex integer.
func ParseInt[T Signed](s string) (T, error) {
	var (
		v   int64
		err error
	)
	if sign, digits, ok := cutHex(s); ok {
		v, err = strconv.ParseInt(sign+digits, 16, bitSize[T]())
	} else {
		v, err = strconv.ParseInt(s, 10, bitSize[T]())
	}
	if err != nil {
		return 0, formatErr(typeName[T](), s, err)
	}
	return T(v), nil
}

// ParseUint parses an unsigned decimal or 0x prefixed hex integer.
func ParseUint[T Unsigned](s string) (T, error) {
	var (
		v   uint64
		err error
	)
	if sign, digits, ok := cutHex(s); ok && sign == "" {
		v, err = strconv.ParseUint(digits, 16, bitSize[T]())
	} else {
		v, err = strconv.ParseUint(s, 10, bitSize[T]())
	}
	if err != nil {
		return 0, formatErr(typeName[T](), s, err)
	}
	return T(v), nil
}

// FormatInt formats v in decimal, or in 0x prefixed hex when hex is set.
func FormatInt[T Signed](v T, hex bool) string {
	if !hex {
		return strconv.FormatInt(int64(v), 10)
	}
	if v < 0 {
		u := uint64(-(int64(v) + 1)) + 1
		return "-0x" + strings.ToUpper(strconv.FormatUint(u, 16))
	}
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}

func FormatUint[T Unsigned](v T, hex bool) string {
	if !hex {
		return strconv.FormatUint(uint64(v), 10)
	}
	return "0x" + strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}
