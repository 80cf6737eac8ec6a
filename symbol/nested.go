package symbol

import (
	"strings"

	"github.com/signadot/strtok/debug"
	"github.com/signadot/strtok/token"
)

type nestedOpts struct {
	inner          Inner
	includeMarkers bool
	allowBefore    bool
}

type NestedOpt func(*nestedOpts)

// WithInner sets the tokenizer applied to the text between the markers.
func WithInner(t Inner) NestedOpt {
	return func(o *nestedOpts) { o.inner = t }
}

func IncludeMarkers(v bool) NestedOpt {
	return func(o *nestedOpts) { o.includeMarkers = v }
}

// AllowTextBeforeOpen controls whether the open marker may be preceded by
// non-blank text in the candidate buffer. It defaults to true.
func AllowTextBeforeOpen(v bool) NestedOpt {
	return func(o *nestedOpts) { o.allowBefore = v }
}

// Nested matches an open marker together with its close marker. Pairs of
// the same markers inside are skipped, so with ( and ) the text
// "a (b (c)) d" yields "b (c)" as the enclosed text.
type Nested struct {
	open, close string
	opt         nestedOpts
}

func NewNested(open, close string, opts ...NestedOpt) (*Nested, error) {
	if open == "" {
		return nil, token.EmptyMarkerErr("open")
	}
	if close == "" {
		return nil, token.EmptyMarkerErr("close")
	}
	n := &Nested{
		open:  open,
		close: close,
		opt:   nestedOpts{allowBefore: true},
	}
	for _, o := range opts {
		o(&n.opt)
	}
	return n, nil
}

func (n *Nested) Open() string { return n.open }
func (n *Nested) Close() string { return n.close }
func (n *Nested) Inner() Inner { return n.opt.inner }
func (n *Nested) IncludesMarkers() bool { return n.opt.includeMarkers }
func (n *Nested) AllowsTextBeforeOpen() bool { return n.opt.allowBefore }

func (n *Nested) Match(consumed, remaining string) (Match, error) {
	if !strings.HasSuffix(consumed, n.open) {
		return None(), nil
	}
	openPos := len(consumed) - len(n.open)
	before := consumed[:openPos]
	if !n.opt.allowBefore && strings.TrimSpace(before) != "" {
		return None(), nil
	}
	start := openPos + len(n.open)
	closePos, err := n.closePosition(remaining, openPos, start)
	if err != nil {
		return None(), err
	}
	between := remaining[start:closePos]
	if debug.Match() {
		debug.Logf("nested %s%s: open at %d close at %d in %q\n", n.open, n.close, openPos, closePos, remaining)
	}

	inner := token.Leaf(between)
	if n.opt.inner != nil {
		toks, err := n.opt.inner.Tokenize(between)
		if err != nil {
			return None(), err
		}
		inner = token.Nested(toks...)
	}
	end := closePos + len(n.close)
	if n.opt.includeMarkers {
		return Found(end, token.Leaf(before), token.Leaf(n.open), inner, token.Leaf(n.close)), nil
	}
	return Found(end, token.Leaf(before), inner), nil
}

// closePosition returns the offset in s of the close marker matching the
// open marker at openedAt, searching from offset from.
func (n *Nested) closePosition(s string, openedAt, from int) (int, error) {
	c := strings.Index(s[from:], n.close)
	if c < 0 {
		return 0, token.NewUnclosedErr(n.open, s, openedAt)
	}
	c += from
	if n.open == n.close {
		return c, nil
	}
	o := strings.Index(s[from:], n.open)
	if o < 0 || o+from > c {
		return c, nil
	}
	o += from
	if debug.Match() {
		debug.Logf("nested %s%s: inner open at %d before close at %d\n", n.open, n.close, o, c)
	}
	innerClose, err := n.closePosition(s, o, o+len(n.open))
	if err != nil {
		return 0, err
	}
	return n.closePosition(s, openedAt, innerClose+len(n.close))
}
