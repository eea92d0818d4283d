package parse

import (
	"github.com/signadot/hrd-format/go-hrd/ir"
	"github.com/signadot/hrd-format/go-hrd/token"
)

type parseOpts struct {
	filename  string
	comments  bool
	positions map[*ir.Element]*token.Pos
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	res := []token.TokenOpt{token.TokenFilename(o.filename)}
	if o.comments {
		res = append(res, token.TokenComments())
	}
	return res
}

type ParseOption func(*parseOpts)

// ParseFilename labels error positions with name.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParsePositions records the position at which each element starts.
func ParsePositions(m map[*ir.Element]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Element]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
