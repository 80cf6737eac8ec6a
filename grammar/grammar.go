// Package grammar builds named tokenizers from a YAML description.
//
//	tokenizers:
//	  main:
//	    trim: true
//	    symbols:
//	    - nested: {open: "(", close: ")", inner: main, includeMarkers: true}
//	    - nested: {open: '"', close: '"'}
//	    - simple: {marker: ","}
//
// An inner tokenizer may refer to any tokenizer of the grammar, including
// the one containing the symbol.
package grammar

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/strtok/symbol"
	"github.com/signadot/strtok/token"
	"github.com/signadot/strtok/tokenizer"

	"github.com/goccy/go-yaml"
)

var ErrGrammar = errors.New("grammar")

type Grammar struct {
	Tokenizers map[string]*TokenizerSpec `json:"tokenizers"`
}

type TokenizerSpec struct {
	Trim    bool         `json:"trim,omitempty"`
	Symbols []SymbolSpec `json:"symbols"`
}

// SymbolSpec describes one symbol. Exactly one field is set.
type SymbolSpec struct {
	Nested *NestedSpec `json:"nested,omitempty"`
	Simple *SimpleSpec `json:"simple,omitempty"`
}

type NestedSpec struct {
	Open           string `json:"open"`
	Close          string `json:"close"`
	Inner          string `json:"inner,omitempty"`
	IncludeMarkers bool   `json:"includeMarkers,omitempty"`
	// nil means allowed
	AllowTextBeforeOpen *bool `json:"allowTextBeforeOpen,omitempty"`
}

type SimpleSpec struct {
	Marker        string `json:"marker"`
	IncludeMarker bool   `json:"includeMarker,omitempty"`
}

func (s *SymbolSpec) String() string {
	switch {
	case s.Nested != nil:
		n := s.Nested
		parts := []string{"nested", strconv.Quote(n.Open), strconv.Quote(n.Close)}
		if n.Inner != "" {
			parts = append(parts, "inner="+n.Inner)
		}
		if n.IncludeMarkers {
			parts = append(parts, "markers")
		}
		if n.AllowTextBeforeOpen != nil && !*n.AllowTextBeforeOpen {
			parts = append(parts, "no-text-before")
		}
		return strings.Join(parts, " ")
	case s.Simple != nil:
		res := "simple " + strconv.Quote(s.Simple.Marker)
		if s.Simple.IncludeMarker {
			res += " markers"
		}
		return res
	default:
		return "<empty>"
	}
}

func Parse(d []byte) (*Grammar, error) {
	g := &Grammar{}
	if err := yaml.UnmarshalWithOptions(d, g, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGrammar, err)
	}
	if len(g.Tokenizers) == 0 {
		return nil, fmt.Errorf("%w: no tokenizers", ErrGrammar)
	}
	return g, nil
}

func Load(path string) (*Grammar, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	g, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return g, nil
}

func (g *Grammar) Names() []string {
	res := make([]string, 0, len(g.Tokenizers))
	for name := range g.Tokenizers {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// Set holds the tokenizers built from a grammar by name. It is not
// modified after Build returns.
type Set struct {
	tokenizers map[string]*tokenizer.Tokenizer
}

func (s *Set) Get(name string) (*tokenizer.Tokenizer, error) {
	t := s.tokenizers[name]
	if t == nil {
		return nil, fmt.Errorf("%w: no tokenizer %q", ErrGrammar, name)
	}
	return t, nil
}

func (s *Set) Names() []string {
	res := make([]string, 0, len(s.tokenizers))
	for name := range s.tokenizers {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// ref resolves an inner tokenizer by name when it is used, so tokenizers
// can refer to themselves or to each other.
type ref struct {
	name string
	set  *Set
}

func (r *ref) Tokenize(s string) ([]token.Token, error) {
	t, err := r.set.Get(r.name)
	if err != nil {
		return nil, err
	}
	return t.Tokenize(s)
}

func (g *Grammar) Build() (*Set, error) {
	set := &Set{tokenizers: make(map[string]*tokenizer.Tokenizer, len(g.Tokenizers))}
	for _, name := range g.Names() {
		spec := g.Tokenizers[name]
		if spec == nil {
			return nil, fmt.Errorf("%w: tokenizer %q is empty", ErrGrammar, name)
		}
		syms := make([]symbol.Symbol, 0, len(spec.Symbols))
		for i := range spec.Symbols {
			sym, err := g.buildSymbol(&spec.Symbols[i], set)
			if err != nil {
				return nil, fmt.Errorf("%w: tokenizer %q symbol %d: %w", ErrGrammar, name, i, err)
			}
			syms = append(syms, sym)
		}
		set.tokenizers[name] = tokenizer.New(tokenizer.WithSymbols(syms...), tokenizer.TrimTokens(spec.Trim))
	}
	return set, nil
}

func (g *Grammar) buildSymbol(spec *SymbolSpec, set *Set) (symbol.Symbol, error) {
	switch {
	case spec.Nested != nil && spec.Simple != nil:
		return nil, errors.New("both nested and simple")
	case spec.Nested != nil:
		n := spec.Nested
		opts := []symbol.NestedOpt{symbol.IncludeMarkers(n.IncludeMarkers)}
		if n.AllowTextBeforeOpen != nil {
			opts = append(opts, symbol.AllowTextBeforeOpen(*n.AllowTextBeforeOpen))
		}
		if n.Inner != "" {
			if g.Tokenizers[n.Inner] == nil {
				return nil, fmt.Errorf("unknown inner tokenizer %q", n.Inner)
			}
			opts = append(opts, symbol.WithInner(&ref{name: n.Inner, set: set}))
		}
		return symbol.NewNested(n.Open, n.Close, opts...)
	case spec.Simple != nil:
		return symbol.NewSimple(spec.Simple.Marker, symbol.SimpleIncludeMarker(spec.Simple.IncludeMarker))
	default:
		return nil, errors.New("no symbol kind")
	}
}
