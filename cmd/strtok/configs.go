package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/strtok/grammar"
	"github.com/signadot/strtok/token"
	"github.com/signadot/strtok/tokenizer"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Grammar string `cli:"name=g aliases=grammar desc='grammar file (yaml)'"`
	Name    string `cli:"name=n aliases=name desc='name of the tokenizer in the grammar (default main)'"`
	Color   bool   `cli:"name=color desc='output with color'"`

	J bool `cli:"name=j aliases=json desc='output tokens as json'"`
	Y bool `cli:"name=y aliases=yaml desc='output tokens as yaml'"`

	Out string

	Main *cli.Command
}

func (cfg *MainConfig) grammar() (*grammar.Grammar, error) {
	if cfg.Grammar == "" {
		return nil, fmt.Errorf("%w: no grammar given (-g)", cli.ErrUsage)
	}
	return grammar.Load(cfg.Grammar)
}

func (cfg *MainConfig) tokenizer() (*tokenizer.Tokenizer, error) {
	g, err := cfg.grammar()
	if err != nil {
		return nil, err
	}
	set, err := g.Build()
	if err != nil {
		return nil, err
	}
	name := cfg.Name
	if name == "" {
		name = "main"
	}
	return set.Get(name)
}

func (cfg *MainConfig) formatOpts(w io.Writer) []token.FormatOpt {
	if cfg.Color {
		return []token.FormatOpt{token.FormatColors(token.NewColors())}
	}
	colorSet := false
	if cfg.Main == nil {
		return nil
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []token.FormatOpt{token.FormatColors(token.NewColors())}
	}
	return nil
}

type SplitConfig struct {
	*MainConfig

	Lines bool `cli:"name=l desc='tokenize each line separately'"`
	Split *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='only report failures'"`
	Check *cli.Command
}

type SymbolsConfig struct {
	*MainConfig

	Symbols *cli.Command
}
