package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/strtok/token"
	"github.com/signadot/strtok/tokenizer"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
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
	for i, in := range ins {
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		texts := []string{in.text}
		if cfg.Lines {
			texts = strings.Split(strings.TrimSuffix(in.text, "\n"), "\n")
		}
		for _, text := range texts {
			if err := splitOne(cfg, cc.Out, tk, text); err != nil {
				return fmt.Errorf("error processing %s: %w", in.name, err)
			}
		}
	}
	return nil
}

func splitOne(cfg *SplitConfig, w io.Writer, tk *tokenizer.Tokenizer, text string) error {
	toks, err := tk.Tokenize(text)
	if err != nil {
		return err
	}
	if toks == nil {
		toks = []token.Token{}
	}
	switch {
	case cfg.J:
		d, err := json.Marshal(toks)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	case cfg.Y:
		d, err := yaml.Marshal(toks)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return token.Format(w, toks, cfg.formatOpts(w)...)
	}
}
