// Package tokenizer splits strings into tokens using an ordered list of
// symbols.
package tokenizer

import (
	"unicode/utf8"

	"github.com/signadot/strtok/debug"
	"github.com/signadot/strtok/symbol"
	"github.com/signadot/strtok/token"
)

// Tokenizer holds an ordered list of symbols. Earlier symbols take
// priority. A Tokenizer is not modified after New and may be shared.
type Tokenizer struct {
	symbols []symbol.Symbol
	trim    bool
}

type Opt func(*Tokenizer)

// WithSymbols appends symbols in priority order.
func WithSymbols(syms ...symbol.Symbol) Opt {
	return func(t *Tokenizer) { t.symbols = append(t.symbols, syms...) }
}

// TrimTokens sets whether the top level leaf tokens are trimmed. Leaves
// which are empty after trimming are removed and nested tokens are
// untouched.
func TrimTokens(v bool) Opt {
	return func(t *Tokenizer) { t.trim = v }
}

func New(opts ...Opt) *Tokenizer {
	t := &Tokenizer{}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Tokenizer) Symbols() []symbol.Symbol {
	res := make([]symbol.Symbol, len(t.symbols))
	copy(res, t.symbols)
	return res
}

func (t *Tokenizer) TrimsTokens() bool {
	return t.trim
}

// Tokenize splits s into tokens.
//
// The candidate buffer grows one rune at a time and is offered to each
// symbol in order. The first committed match emits its tokens and the
// scan restarts after the matched text. A symbol which is still scanning
// ends the pass so the buffer keeps growing. Text left when the input is
// exhausted becomes a final leaf.
func (t *Tokenizer) Tokenize(s string) ([]token.Token, error) {
	if s == "" {
		return nil, nil
	}
	var (
		res       []token.Token
		remaining = s
		n         = 0
	)
	for len(remaining) != 0 && n < len(remaining) {
		_, sz := utf8.DecodeRuneInString(remaining[n:])
		n += sz
	pass:
		for _, sym := range t.symbols {
			m, err := sym.Match(remaining[:n], remaining)
			if err != nil {
				return nil, err
			}
			switch m.Status {
			case symbol.Matched:
				adv := min(max(m.N, n), len(remaining))
				if debug.Scan() {
					debug.Logf("tokenize: %T committed %d bytes at %q: %v\n", sym, adv, remaining[:n], m.Tokens)
				}
				res = append(res, m.Tokens...)
				remaining = remaining[adv:]
				n = 0
				break pass
			case symbol.StillScanning:
				n = min(max(m.N, n), len(remaining))
				if debug.Scan() {
					debug.Logf("tokenize: %T scanning %q\n", sym, remaining[:n])
				}
				break pass
			}
		}
	}
	if remaining != "" {
		res = append(res, token.Leaf(remaining))
	}
	if t.trim {
		res = token.Trim(res)
	}
	return res, nil
}
