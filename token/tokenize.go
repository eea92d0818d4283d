package token

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

type tokenOpts struct {
	comments bool
	name     string
}

type TokenOpt func(*tokenOpts)

// TokenComments keeps comments as TComment tokens.
func TokenComments() TokenOpt {
	return func(o *tokenOpts) { o.comments = true }
}

// TokenFilename labels token positions with name.
func TokenFilename(name string) TokenOpt {
	return func(o *tokenOpts) { o.name = name }
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, opt := range opts {
		opt(o)
	}
	posDoc := NewPosDoc(o.name, src)
	i := 0
	if bytes.HasPrefix(src, bom) {
		i = len(bom)
	}
	n := len(src)
	for i < n {
		c := src[i]
		if isSpace(c) {
			i++
			continue
		}
		start := i
		switch c {
		case '{', '}', '[', ']', ',', '=':
			dst = append(dst, Token{Type: punct[c], Bytes: src[i : i+1], Pos: posDoc.Pos(i)})
			i++
			continue
		case '"':
			end, err := scanQuoted(src, i)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(start))
			}
			if !utf8.Valid(src[start:end]) {
				return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(start))
			}
			dst = append(dst, Token{Type: TString, Bytes: src[start:end], Pos: posDoc.Pos(start)})
			i = end
			continue
		}
		if isCommentStart(src[i:]) {
			end, err := scanComment(src, i)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(start))
			}
			if o.comments {
				dst = append(dst, Token{Type: TComment, Bytes: src[start:end], Pos: posDoc.Pos(start)})
			}
			i = end
			continue
		}
		for i < n && !IsDelim(src[i]) && !isCommentStart(src[i:]) {
			i++
		}
		if !utf8.Valid(src[start:i]) {
			return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(start))
		}
		tt := TName
		if isValueStart(c) {
			tt = TValue
		}
		dst = append(dst, Token{Type: tt, Bytes: src[start:i], Pos: posDoc.Pos(start)})
	}
	return dst, nil
}

// EndPos returns the position just past the end of the document the
// tokens were read from, or nil if toks is empty.
func EndPos(toks []Token) *Pos {
	if len(toks) == 0 {
		return nil
	}
	return toks[0].Pos.D.end()
}

var punct = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'[': TLSquare,
	']': TRSquare,
	',': TComma,
	'=': TEquals,
}

// scanQuoted returns the offset just past the quoted string starting at
// d[i].
func scanQuoted(d []byte, i int) (int, error) {
	n := len(d)
	for i++; i < n; i++ {
		switch d[i] {
		case '\\':
			i++
		case '"':
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w quoted string", ErrUnterminated)
}

func scanComment(d []byte, i int) (int, error) {
	if d[i+1] == '/' {
		j := bytes.IndexByte(d[i:], '\n')
		if j < 0 {
			return len(d), nil
		}
		return i + j, nil
	}
	j := bytes.Index(d[i+2:], []byte("*/"))
	if j < 0 {
		return 0, fmt.Errorf("%w comment", ErrUnterminated)
	}
	return i + 2 + j + 2, nil
}
