package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func symbols(cfg *SymbolsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Symbols.Parse(cc, args); err != nil {
		return err
	}
	g, err := cfg.grammar()
	if err != nil {
		return err
	}
	if _, err := g.Build(); err != nil {
		return err
	}
	for _, name := range g.Names() {
		spec := g.Tokenizers[name]
		trim := ""
		if spec.Trim {
			trim = " (trim)"
		}
		fmt.Fprintf(cc.Out, "%s%s:\n", name, trim)
		for i := range spec.Symbols {
			fmt.Fprintf(cc.Out, "  %d. %s\n", i+1, spec.Symbols[i].String())
		}
	}
	return nil
}
