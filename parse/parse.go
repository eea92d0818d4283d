// Package parse reads HRD text into ir documents.
//
// The parser is recursive descent over the tokens produced by
// [token.Tokenize]. Every element is added to its parent with
// [ir.Element.AddElement], so parsed documents satisfy the same
// structural rules as documents built in code.
package parse

import (
	"errors"
	"io"
	"os"

	"github.com/signadot/hrd-format/go-hrd/debug"
	"github.com/signadot/hrd-format/go-hrd/ir"
	"github.com/signadot/hrd-format/go-hrd/token"
)

// Parse parses an HRD document. An empty input yields an empty document.
func Parse(d []byte, opts ...ParseOption) (*ir.Element, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		var te *token.TokenizeErr
		if errors.As(err, &te) {
			return nil, &Error{Pos: &te.Pos, Err: te.Err}
		}
		return nil, &Error{Err: err}
	}
	toks = dropComments(toks)
	if debug.Parse() {
		debug.Logf("parse %q: %d tokens", pOpts.filename, len(toks))
		for i := range toks {
			debug.Logf("  %s", toks[i].Info())
		}
	}
	end := token.EndPos(toks)
	if end == nil {
		end = token.NewPosDoc(pOpts.filename, d).Pos(len(d))
	}
	p := &parser{toks: toks, opts: pOpts, end: end}
	doc := ir.NewDocument()
	if err := p.members(doc, nil); err != nil {
		return nil, err
	}
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Element, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Element, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// ParseFile parses the file at path, labelling positions with path
// unless ParseFilename is given.
func ParseFile(path string, opts ...ParseOption) (*ir.Element, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, append([]ParseOption{ParseFilename(path)}, opts...)...)
}

// comments are not part of the document model.
func dropComments(toks []token.Token) []token.Token {
	res := toks[:0]
	for i := range toks {
		if toks[i].Type != token.TComment {
			res = append(res, toks[i])
		}
	}
	return res
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
	end  *token.Pos
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) peekType(off int) (token.TokenType, bool) {
	if p.i+off >= len(p.toks) {
		return 0, false
	}
	return p.toks[p.i+off].Type, true
}

func (p *parser) next() *token.Token {
	t := p.peek()
	if t != nil {
		p.i++
	}
	return t
}

func (p *parser) errAt(pos *token.Pos, format string, args ...any) error {
	if pos == nil {
		pos = p.end
	}
	return &Error{Pos: pos, Err: ir.NewStructuralError("parse", format, args...)}
}

func (p *parser) track(e *ir.Element, t *token.Token) {
	if p.opts.positions != nil && t != nil {
		p.opts.positions[e] = t.Pos
	}
}

// members reads the members of node until the token closing open, or
// until the end of input when open is nil.
func (p *parser) members(node *ir.Element, open *token.Token) error {
	for {
		t := p.peek()
		if t == nil {
			if open != nil {
				return p.errAt(nil, "unterminated %q opened at %s", open.Bytes, open.Pos)
			}
			return nil
		}
		switch t.Type {
		case token.TRCurl:
			if open != nil {
				p.next()
				return nil
			}
			return p.errAt(t.Pos, "unexpected %q", t.Bytes)
		case token.TRSquare:
			return p.errAt(t.Pos, "unexpected %q", t.Bytes)
		case token.TComma:
			return p.errAt(t.Pos, "comma outside of an array")
		case token.TEquals:
			return p.errAt(t.Pos, "unexpected %q", t.Bytes)
		}
		name := ""
		if t.Type == token.TName {
			switch tt, _ := p.peekType(1); tt {
			case token.TEquals:
				name = t.String()
				p.i += 2
			case token.TLCurl, token.TLSquare:
				name = t.String()
				p.i++
			}
		}
		v, err := p.value()
		if err != nil {
			return err
		}
		v.Name = name
		p.track(v, t)
		if err := node.AddElement(v); err != nil {
			return &Error{Pos: t.Pos, Err: err}
		}
	}
}

func (p *parser) value() (*ir.Element, error) {
	t := p.next()
	if t == nil {
		return nil, p.errAt(nil, "expected a value")
	}
	switch t.Type {
	case token.TName:
		if string(t.Bytes) == token.Null {
			return ir.NewNullAttribute(""), nil
		}
		return ir.FromBare(t.String()), nil
	case token.TValue:
		return ir.FromBare(t.String()), nil
	case token.TString:
		s, err := token.Unquote(string(t.Bytes))
		if err != nil {
			return nil, &Error{Pos: t.Pos, Err: err}
		}
		return ir.FromString(s), nil
	case token.TLCurl:
		node := ir.NewNode("")
		if err := p.members(node, t); err != nil {
			return nil, err
		}
		return node, nil
	case token.TLSquare:
		return p.array(t)
	}
	return nil, p.errAt(t.Pos, "expected a value, got %q", t.Bytes)
}

func (p *parser) array(open *token.Token) (*ir.Element, error) {
	arr := ir.NewArray("")
	if t := p.peek(); t != nil && t.Type == token.TRSquare {
		p.next()
		return arr, nil
	}
	for {
		t := p.peek()
		if t == nil {
			return nil, p.errAt(nil, "unterminated %q opened at %s", open.Bytes, open.Pos)
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		p.track(v, t)
		if err := arr.AddElement(v); err != nil {
			return nil, &Error{Pos: t.Pos, Err: err}
		}
		sep := p.next()
		if sep == nil {
			return nil, p.errAt(nil, "unterminated %q opened at %s", open.Bytes, open.Pos)
		}
		switch sep.Type {
		case token.TRSquare:
			return arr, nil
		case token.TComma:
			if t := p.peek(); t != nil && t.Type == token.TRSquare {
				p.next()
				return arr, nil
			}
		default:
			return nil, p.errAt(sep.Pos, "expected ',' or %q, got %q", "]", sep.Bytes)
		}
	}
}
