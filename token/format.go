package token

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	LeafColor ColorAttr = iota
	EmptyLeafColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			LeafColor:      color.RGB(8, 196, 16).SprintfFunc(),
			EmptyLeafColor: color.RGB(96, 96, 96).SprintfFunc(),
			SepColor:       color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f := c.Map[a]
	if f == nil {
		f = c.Default
	}
	return f("%s", s)
}

func colorDefault(f string, args ...any) string { return fmt.Sprintf(f, args...) }

type formatOpts struct {
	colors *Colors
	indent string
}

type FormatOpt func(*formatOpts)

func FormatColors(c *Colors) FormatOpt {
	return func(o *formatOpts) { o.colors = c }
}

func FormatIndent(s string) FormatOpt {
	return func(o *formatOpts) { o.indent = s }
}

// Format writes toks to w as an indented tree, one leaf per line with
// nested tokens enclosed in [ and ].
func Format(w io.Writer, toks []Token, opts ...FormatOpt) error {
	o := &formatOpts{indent: "  "}
	for _, opt := range opts {
		opt(o)
	}
	var b strings.Builder
	format(&b, toks, o, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

// Sprint returns the uncolored tree rendering of toks.
func Sprint(toks []Token) string {
	var b strings.Builder
	format(&b, toks, &formatOpts{indent: "  "}, 0)
	return b.String()
}

func format(b *strings.Builder, toks []Token, o *formatOpts, depth int) {
	pre := strings.Repeat(o.indent, depth)
	for i := range toks {
		t := &toks[i]
		b.WriteString(pre)
		if t.kind == KLeaf {
			attr := LeafColor
			if t.text == "" {
				attr = EmptyLeafColor
			}
			b.WriteString(o.colors.Color(attr, strconv.Quote(t.text)))
			b.WriteByte('\n')
			continue
		}
		b.WriteString(o.colors.Color(SepColor, "["))
		b.WriteByte('\n')
		format(b, t.children, o, depth+1)
		b.WriteString(pre)
		b.WriteString(o.colors.Color(SepColor, "]"))
		b.WriteByte('\n')
	}
}
