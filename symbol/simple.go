package symbol

import (
	"strings"

	"github.com/signadot/strtok/token"
)

type SimpleOpt func(*Simple)

func SimpleIncludeMarker(v bool) SimpleOpt {
	return func(s *Simple) { s.includeMarker = v }
}

// Simple splits the input on a fixed marker. The text before the marker
// becomes a leaf, followed by the marker itself when it is included.
type Simple struct {
	marker        string
	includeMarker bool
}

func NewSimple(marker string, opts ...SimpleOpt) (*Simple, error) {
	if marker == "" {
		return nil, token.EmptyMarkerErr("marker")
	}
	s := &Simple{marker: marker}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Simple) Marker() string { return s.marker }

func (s *Simple) IncludesMarkers() bool { return s.includeMarker }

func (s *Simple) Match(consumed, _ string) (Match, error) {
	if !strings.HasSuffix(consumed, s.marker) {
		return None(), nil
	}
	before := token.Leaf(consumed[:len(consumed)-len(s.marker)])
	if s.includeMarker {
		return Found(len(consumed), before, token.Leaf(s.marker)), nil
	}
	return Found(len(consumed), before), nil
}
