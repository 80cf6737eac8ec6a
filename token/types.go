package token

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Kind int

const (
	KLeaf Kind = iota
	KNested
)

func (k Kind) String() string {
	switch k {
	case KLeaf:
		return "KLeaf"
	case KNested:
		return "KNested"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is the result of tokenizing text. The zero value is an empty leaf.
type Token struct {
	kind     Kind
	text     string
	children []Token
}

func Leaf(text string) Token {
	return Token{kind: KLeaf, text: text}
}

// Nested creates a nested token. The children are copied.
func Nested(children ...Token) Token {
	cs := make([]Token, len(children))
	copy(cs, children)
	return Token{kind: KNested, children: cs}
}

func (t Token) Kind() Kind {
	return t.kind
}

func (t Token) IsLeaf() bool {
	return t.kind == KLeaf
}

// Text returns the text of a leaf, or "" for a nested token.
func (t Token) Text() string {
	return t.text
}

// Children returns a copy of the children of a nested token, or nil for a
// leaf.
func (t Token) Children() []Token {
	if t.kind != KNested {
		return nil
	}
	res := make([]Token, len(t.children))
	copy(res, t.children)
	return res
}

func (t Token) Len() int {
	return len(t.children)
}

func (t Token) Child(i int) Token {
	return t.children[i]
}

func (t Token) Equal(o Token) bool {
	if t.kind != o.kind {
		return false
	}
	if t.kind == KLeaf {
		return t.text == o.text
	}
	return Equal(t.children, o.children)
}

// Equal reports whether two token sequences are equal by value.
func Equal(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String returns the flattened text of the token.
func (t Token) String() string {
	if t.kind == KLeaf {
		return t.text
	}
	return Join(t.children)
}

// Value returns the text of a leaf as a string and a nested token as a
// []any of child values.
func (t Token) Value() any {
	if t.kind == KLeaf {
		return t.text
	}
	res := make([]any, len(t.children))
	for i := range t.children {
		res[i] = t.children[i].Value()
	}
	return res
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value())
}

func (t Token) MarshalYAML() (any, error) {
	return t.Value(), nil
}

// Join concatenates the leaves of toks depth first.
func Join(toks []Token) string {
	var b strings.Builder
	join(&b, toks)
	return b.String()
}

func join(b *strings.Builder, toks []Token) {
	for i := range toks {
		t := &toks[i]
		if t.kind == KLeaf {
			b.WriteString(t.text)
			continue
		}
		join(b, t.children)
	}
}

// Trim trims surrounding whitespace from the top level leaves of toks.
// Leaves which are empty after trimming are removed. Nested tokens are
// untouched.
func Trim(toks []Token) []Token {
	res := make([]Token, 0, len(toks))
	for _, t := range toks {
		if t.kind != KLeaf {
			res = append(res, t)
			continue
		}
		s := strings.TrimSpace(t.text)
		if s == "" {
			continue
		}
		res = append(res, Leaf(s))
	}
	return res
}

// Leaves is a convenience for building token sequences of leaves.
func Leaves(texts ...string) []Token {
	res := make([]Token, len(texts))
	for i, s := range texts {
		res[i] = Leaf(s)
	}
	return res
}
