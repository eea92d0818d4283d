package token

import (
	"strings"
	"unicode/utf8"
)

// Null is the bare token standing for the null value.
const Null = "null"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v', ';':
		return true
	}
	return false
}

// IsDelim reports whether c ends a bare token.
func IsDelim(c byte) bool {
	if isSpace(c) {
		return true
	}
	switch c {
	case '"', '[', ']', '{', '}', ',', '=':
		return true
	}
	return false
}

func isCommentStart(d []byte) bool {
	return len(d) > 1 && d[0] == '/' && (d[1] == '/' || d[1] == '*')
}

// isValueStart reports whether a bare token starting with c is a value
// rather than a name.
func isValueStart(c byte) bool {
	return ('0' <= c && c <= '9') || c == '-' || c == '+' || c == '.'
}

func bareOK(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if IsDelim(s[i]) {
			return false
		}
	}
	return !strings.Contains(s, "//") && !strings.Contains(s, "/*")
}

// ValidBare reports whether s can be written as a bare value and read
// back unchanged.
func ValidBare(s string) bool {
	return s != Null && bareOK(s)
}

// ValidName reports whether s can be written as a member name.
func ValidName(s string) bool {
	return bareOK(s) && !isValueStart(s[0])
}
