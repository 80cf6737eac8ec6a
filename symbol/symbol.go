package symbol

import (
	"fmt"

	"github.com/signadot/strtok/token"
)

// Symbol is a matching strategy.
//
// consumed is the candidate buffer at the current scan position and
// remaining is the unconsumed input, which has consumed as its prefix.
// Implementations must depend only on their own configuration and the two
// arguments.
type Symbol interface {
	Match(consumed, remaining string) (Match, error)
	// IncludesMarkers reports whether recognized markers appear as tokens
	// in the result.
	IncludesMarkers() bool
}

// Inner tokenizes the text found between markers.
type Inner interface {
	Tokenize(s string) ([]token.Token, error)
}

type Status int

const (
	NoMatch Status = iota
	StillScanning
	Matched
)

func (s Status) String() string {
	switch s {
	case NoMatch:
		return "NoMatch"
	case StillScanning:
		return "StillScanning"
	case Matched:
		return "Matched"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Match is the result of offering a position to a Symbol.
type Match struct {
	Status Status
	// N is the length in bytes of remaining covered by the symbol: the
	// committed length for Matched, the new buffer length for
	// StillScanning.
	N      int
	Tokens []token.Token
}

func None() Match {
	return Match{}
}

func Scanning(n int) Match {
	return Match{Status: StillScanning, N: n}
}

func Found(n int, toks ...token.Token) Match {
	return Match{Status: Matched, N: n, Tokens: toks}
}
