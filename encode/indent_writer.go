package encode

import (
	"io"
	"strings"
)

// IndentWriter prefixes every non-empty line written through it with
// the current indentation. Indentation is applied lazily, when the first
// byte of a line arrives.
type IndentWriter struct {
	w         io.Writer
	unit      string
	level     int
	lineStart bool
}

// NewIndentWriter returns a writer indenting by width copies of char
// per level.
func NewIndentWriter(w io.Writer, char rune, width int) *IndentWriter {
	return &IndentWriter{
		w:         w,
		unit:      strings.Repeat(string(char), max(width, 0)),
		lineStart: true,
	}
}

func (iw *IndentWriter) IncreaseIndent() {
	iw.level++
}

// DecreaseIndent lowers the indentation by one level, stopping at zero.
func (iw *IndentWriter) DecreaseIndent() {
	if iw.level > 0 {
		iw.level--
	}
}

func (iw *IndentWriter) Level() int {
	return iw.level
}

func (iw *IndentWriter) Write(p []byte) (int, error) {
	n := 0
	for len(p) != 0 {
		if iw.lineStart && p[0] != '\n' && iw.level != 0 {
			if _, err := io.WriteString(iw.w, strings.Repeat(iw.unit, iw.level)); err != nil {
				return n, err
			}
		}
		iw.lineStart = false
		i := 0
		for i < len(p) && p[i] != '\n' {
			i++
		}
		if i < len(p) {
			i++
			iw.lineStart = true
		}
		m, err := iw.w.Write(p[:i])
		n += m
		if err != nil {
			return n, err
		}
		p = p[i:]
	}
	return n, nil
}

func (iw *IndentWriter) WriteString(s string) (int, error) {
	return iw.Write([]byte(s))
}
