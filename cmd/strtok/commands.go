package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "strtok").
		WithSynopsis("strtok [opts] command [opts]").
		WithDescription("strtok splits text into tokens using the symbols of a grammar.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return strtokMain(cfg, cc, args)
		}).
		WithSubs(
			SplitCommand(cfg),
			CheckCommand(cfg),
			SymbolsCommand(cfg))
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithSynopsis("split [files]").
		WithDescription("tokenize files or stdin and print the tokens").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [files]").
		WithDescription(checkDesc).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDesc = `check tokenizes the input, joins the tokens back into text and tokenizes
the result again.  When the two token sequences differ, a diff of their
renderings is printed and check fails.

Grammars whose symbols include their markers always pass.`

func SymbolsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SymbolsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Symbols, "symbols").
		WithSynopsis("symbols").
		WithDescription("list the tokenizers of the grammar and their symbols").
		WithRun(func(cc *cli.Context, args []string) error {
			return symbols(cfg, cc, args)
		})
}
