package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a document to lines and columns.
type PosDoc struct {
	Name string

	d []byte
	n []int
}

// NewPosDoc indexes the newlines of d. Name labels positions, typically
// with a file name.
func NewPosDoc(name string, d []byte) *PosDoc {
	p := &PosDoc{Name: name, d: d}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the zero based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) end() *Pos {
	return p.Pos(len(p.d))
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

// Line returns the one based line of p.
func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l + 1
}

// Col returns the one based column of p.
func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c + 1
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	if p.D.Name != "" {
		return fmt.Sprintf("%s:%d:%d (`...%s...`)", p.D.Name, p.Line(), p.Col(), sample)
	}
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
