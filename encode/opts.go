package encode

import "github.com/signadot/hrd-format/go-hrd/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of indent characters per level.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// IndentChar sets the indent character.
func IndentChar(r rune) EncodeOption {
	return func(es *EncState) { es.indentChar = r }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire writes the document on a single line.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
