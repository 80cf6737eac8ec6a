package token

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMarker = errors.New("empty marker")
	ErrUnclosed    = errors.New("unclosed")
)

// UnclosedErr reports an open marker without a matching close marker.
type UnclosedErr struct {
	// Marker is the open marker.
	Marker string
	// Pos is the position of the open marker in Text.
	Pos Pos
	// Text is the text which was scanned for the close marker.
	Text string
}

func NewUnclosedErr(marker string, text string, at int) *UnclosedErr {
	return &UnclosedErr{
		Marker: marker,
		Pos:    *NewPosDoc(text).Pos(at),
		Text:   text,
	}
}

func (u *UnclosedErr) Unwrap() error {
	return ErrUnclosed
}

func (u *UnclosedErr) Error() string {
	return fmt.Sprintf("%s: %s opened at %s but not closed in %q", ErrUnclosed.Error(), u.Marker, u.Pos.String(), u.Text)
}

func EmptyMarkerErr(which string) error {
	return fmt.Errorf("%w: %s", ErrEmptyMarker, which)
}
