package token

import (
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func sample() []Token {
	return []Token{
		Leaf(" yes "),
		Leaf("("),
		Nested(Leaf("test "), Leaf("("), Nested(Leaf("and test")), Leaf(")")),
		Leaf(")"),
		Leaf("  "),
	}
}

func TestJoin(t *testing.T) {
	if got, want := Join(sample()), " yes (test (and test))  "; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := Join(nil); got != "" {
		t.Errorf("got %q want empty", got)
	}
}

func TestTrim(t *testing.T) {
	got := Trim(sample())
	want := []Token{
		Leaf("yes"),
		Leaf("("),
		Nested(Leaf("test "), Leaf("("), Nested(Leaf("and test")), Leaf(")")),
		Leaf(")"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTrimKeepsNestedWhitespace(t *testing.T) {
	in := []Token{Nested(Leaf("  "), Leaf(" a "))}
	got := Trim(in)
	if len(got) != 1 || !got[0].Equal(in[0]) {
		t.Errorf("nested token changed: %v", got)
	}
}

func TestEqual(t *testing.T) {
	if !Leaf("a").Equal(Leaf("a")) {
		t.Error("equal leaves differ")
	}
	if Leaf("").Equal(Nested()) {
		t.Error("empty leaf equals empty nested")
	}
	if Nested(Leaf("a")).Equal(Nested(Leaf("a"), Leaf("b"))) {
		t.Error("nested of different length are equal")
	}
}

func TestNestedCopiesChildren(t *testing.T) {
	cs := Leaves("a", "b")
	n := Nested(cs...)
	cs[0] = Leaf("z")
	if n.Child(0).Text() != "a" {
		t.Errorf("got %q want %q", n.Child(0).Text(), "a")
	}
	got := n.Children()
	got[1] = Leaf("z")
	if n.Child(1).Text() != "b" {
		t.Errorf("got %q want %q", n.Child(1).Text(), "b")
	}
	if Leaf("x").Children() != nil {
		t.Error("leaf has children")
	}
}

func TestMarshal(t *testing.T) {
	d, err := json.Marshal(sample())
	if err != nil {
		t.Fatal(err)
	}
	want := `[" yes ","(",["test ","(",["and test"],")"],")","  "]`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}
	y, err := yaml.Marshal([]Token{Leaf("a"), Nested(Leaf("b"))})
	if err != nil {
		t.Fatal(err)
	}
	var back []any
	if err := yaml.Unmarshal(y, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", []any{"b"}}, back); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSprint(t *testing.T) {
	got := Sprint([]Token{Leaf("a"), Nested(Leaf(""), Leaf("b"))})
	want := `"a"
[
  ""
  "b"
]
`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
