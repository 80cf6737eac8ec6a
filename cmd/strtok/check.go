package main

import (
	"errors"
	"fmt"

	"github.com/signadot/strtok/token"
	"github.com/signadot/strtok/tokenizer"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var errRoundTrip = errors.New("round trip changed tokens")

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	ins, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, in := range ins {
		diff, err := roundTrip(tk, in.text)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", in.name, err)
		}
		if diff == "" {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", in.name)
			}
			continue
		}
		failed++
		fmt.Fprintf(cc.Out, "%s: tokens changed\n%s\n", in.name, diff)
	}
	if failed != 0 {
		return fmt.Errorf("%w in %d of %d inputs", errRoundTrip, failed, len(ins))
	}
	return nil
}

// roundTrip tokenizes text, joins the tokens and tokenizes the result. It
// returns a diff of the two renderings, or "" if they are the same.
func roundTrip(tk *tokenizer.Tokenizer, text string) (string, error) {
	first, err := tk.Tokenize(text)
	if err != nil {
		return "", err
	}
	second, err := tk.Tokenize(token.Join(first))
	if err != nil {
		return "", fmt.Errorf("joined tokens: %w", err)
	}
	if token.Equal(first, second) {
		return "", nil
	}
	from, to := token.Sprint(first), token.Sprint(second)
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	return dmp.DiffPrettyText(diffs), nil
}
