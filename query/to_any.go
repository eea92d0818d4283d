package query

import (
	"github.com/signadot/hrd-format/go-hrd/codec"
	"github.com/signadot/hrd-format/go-hrd/ir"
)

// ToAny projects e onto plain Go values: nodes become maps of their
// named members, arrays slices, quoted values strings and null nil. Bare
// values become int64 or float64 when they parse as such, and strings
// otherwise.
func ToAny(e *ir.Element) any {
	r := e.Resolve()
	switch r.Kind {
	case ir.NodeKind:
		res := make(map[string]any, len(r.Children))
		for _, c := range r.Children {
			if c.IsNamed() {
				res[c.Name] = ToAny(c)
			}
		}
		return res
	case ir.ArrayKind:
		res := make([]any, len(r.Children))
		for i, c := range r.Children {
			res[i] = ToAny(c)
		}
		return res
	}
	if r.Value == nil {
		return nil
	}
	v := *r.Value
	if r.Quoted {
		return v
	}
	if i, err := codec.ParseInt[int64](v); err == nil {
		return i
	}
	if f, err := codec.ParseFloat[float64](v); err == nil {
		return f
	}
	return v
}
