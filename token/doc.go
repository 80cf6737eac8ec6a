// Package token provides the values produced by tokenization.
//
// A [Token] is either a leaf holding a fragment of the input or a nested
// sequence of tokens, produced when text found between matched delimiters
// is tokenized again.
//
// [Join] flattens tokens back to text and [Trim] applies the whitespace
// policy of a trimming tokenizer.
package token
