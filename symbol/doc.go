// Package symbol provides the matching strategies used by a tokenizer.
//
// A [Symbol] is offered the text accumulated at the current scan position
// together with the remaining input and reports a [Match]: no match, still
// scanning, or a committed match with the tokens it produced.
//
// [Nested] matches open and close markers, skipping nested pairs of the
// same markers, and can tokenize the enclosed text with an inner
// tokenizer. [Simple] splits on a fixed marker.
package symbol
