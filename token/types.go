package token

import "fmt"

type TokenType int

const (
	TName TokenType = iota
	TValue
	TString
	TEquals
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TName:    "TName",
		TValue:   "TValue",
		TString:  "TString",
		TEquals:  "TEquals",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComment: "TComment",
	}[t]
}

// Token is a lexical token. Bytes holds the source text, including the
// quotes of a TString.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

// Info describes t for debug traces.
func (t *Token) Info() string {
	return fmt.Sprintf("%s `%s` %s", t.Type, t.Bytes, t.Pos.String())
}

// String returns the text the token stands for: the unescaped contents
// of a quoted string, the source text otherwise.
func (t *Token) String() string {
	if t.Type == TString {
		s, err := Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes)
		}
		return s
	}
	return string(t.Bytes)
}

// IsBare reports whether t is a bare token, name or value.
func (t *Token) IsBare() bool {
	return t.Type == TName || t.Type == TValue
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
