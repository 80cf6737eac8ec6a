package token

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PosDoc indexes the newlines of a text so offsets can be reported as
// line and column.
type PosDoc struct {
	d string
	n []int
}

func NewPosDoc(d string) *PosDoc {
	p := &PosDoc{d: d}
	off := 0
	for {
		i := strings.IndexByte(d[off:], '\n')
		if i < 0 {
			break
		}
		p.n = append(p.n, off+i)
		off += i + 1
	}
	return p
}

func (p *PosDoc) Text() string {
	return p.d
}

// LineCol returns the 0-based line and column of offset off.
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

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	d := p.D.d
	sample := d[max(0, p.I-5):min(p.I+5, len(d))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := p.D.LineCol(p.I)
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, l, c)
}
