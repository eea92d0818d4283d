package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokSummary struct {
	Type TokenType
	Text string
}

func summarize(toks []Token) []tokSummary {
	res := make([]tokSummary, len(toks))
	for i := range toks {
		res[i] = tokSummary{Type: toks[i].Type, Text: toks[i].String()}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tokSummary
	}{
		{
			name: "attribute",
			in:   "A = 1",
			want: []tokSummary{{TName, "A"}, {TEquals, "="}, {TValue, "1"}},
		},
		{
			name: "no spaces",
			in:   `A=-0x1F;B="x"`,
			want: []tokSummary{{TName, "A"}, {TEquals, "="}, {TValue, "-0x1F"}, {TName, "B"}, {TEquals, "="}, {TString, "x"}},
		},
		{
			name: "containers",
			in:   "N { L [ 1, .5 ] }",
			want: []tokSummary{
				{TName, "N"}, {TLCurl, "{"}, {TName, "L"}, {TLSquare, "["},
				{TValue, "1"}, {TComma, ","}, {TValue, ".5"}, {TRSquare, "]"}, {TRCurl, "}"},
			},
		},
		{
			name: "comments",
			in:   "// head\nA = 1 /* mid\n */ B = x// tail",
			want: []tokSummary{{TName, "A"}, {TEquals, "="}, {TValue, "1"}, {TName, "B"}, {TEquals, "="}, {TName, "x"}},
		},
		{
			name: "slash in bare",
			in:   "A = a/b",
			want: []tokSummary{{TName, "A"}, {TEquals, "="}, {TName, "a/b"}},
		},
		{
			name: "bom",
			in:   "\ufeffA = null",
			want: []tokSummary{{TName, "A"}, {TEquals, "="}, {TName, "null"}},
		},
		{
			name: "escapes",
			in:   `S = "a\"b\\c\nd\qe"`,
			want: []tokSummary{{TName, "S"}, {TEquals, "="}, {TString, "a\"b\\c\ndqe"}},
		},
		{
			name: "line continuation",
			in:   "S = \"a\\\nb\"",
			want: []tokSummary{{TName, "S"}, {TEquals, "="}, {TString, "a\nb"}},
		},
		{
			name: "empty",
			in:   " ; \n\t",
			want: []tokSummary{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(nil, []byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, summarize(toks)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize(nil, []byte("A = 1 // c"), TokenComments())
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 4 || toks[3].Type != TComment || toks[3].String() != "// c" {
		t.Errorf("got %v", summarize(toks))
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		err  error
		line int
		col  int
	}{
		{"A = \"abc", ErrUnterminated, 1, 5},
		{"A = 1\n/* x", ErrUnterminated, 2, 1},
		{"A = \"\\", ErrUnterminated, 1, 5},
		{"A = \xff", ErrBadUTF8, 1, 5},
	}
	for _, tt := range tests {
		_, err := Tokenize(nil, []byte(tt.in))
		if !errors.Is(err, tt.err) {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.err, err)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: expected *TokenizeErr, got %T", tt.in, err)
			continue
		}
		if te.Pos.Line() != tt.line || te.Pos.Col() != tt.col {
			t.Errorf("%q: got %d:%d, want %d:%d", tt.in, te.Pos.Line(), te.Pos.Col(), tt.line, tt.col)
		}
	}
}

func TestPosFilename(t *testing.T) {
	toks, err := Tokenize(nil, []byte("A = 1\nB = 2"), TokenFilename("x.hrd"))
	if err != nil {
		t.Fatal(err)
	}
	p := toks[3].Pos
	if p.Line() != 2 || p.Col() != 1 {
		t.Errorf("got %d:%d", p.Line(), p.Col())
	}
	if got := p.String(); got[:10] != "x.hrd:2:1 " {
		t.Errorf("got %q", got)
	}
}

func TestEndPos(t *testing.T) {
	if EndPos(nil) != nil {
		t.Error("expected nil end for no tokens")
	}
	toks, err := Tokenize(nil, []byte("A = 1\nB = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	end := EndPos(toks)
	if end.I != 12 || end.Line() != 3 || end.Col() != 1 {
		t.Errorf("got offset %d line %d col %d", end.I, end.Line(), end.Col())
	}
}

func TestTokenInfo(t *testing.T) {
	toks, err := Tokenize(nil, []byte(`A = "x"`), TokenFilename("f.hrd"))
	if err != nil {
		t.Fatal(err)
	}
	want := "TString `\"x\"` f.hrd:1:5"
	if got := toks[2].Info(); !strings.HasPrefix(got, want) {
		t.Errorf("got %q, want prefix %q", got, want)
	}
}
