package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func strtokMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if numSet(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: -j and -y are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	closeOut, err := cfg.openOut(cc)
	if err != nil {
		return err
	}
	err = sub.Run(cc, args[1:])
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if errors.Is(err, cli.ErrUsage) {
		// report against the subcommand, not strtok itself.
		sub.Usage(cc, err)
		return cli.ExitCodeErr(sub.Exit(cc, err))
	}
	return err
}

// numSet counts the flags which are set.
func numSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// outOpt only records the output path; the file is created by openOut
// once the command line is known to be valid.
func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	if a == "" {
		return nil, fmt.Errorf("%w: empty output file", cli.ErrUsage)
	}
	cfg.Out = a
	return a, nil
}

// openOut points cc.Out at the -o file, if any. The returned func closes
// it and is never nil.
func (cfg *MainConfig) openOut(cc *cli.Context) (func() error, error) {
	if cfg.Out == "" || cfg.Out == "-" {
		return func() error { return nil }, nil
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return nil, fmt.Errorf("could not create output %q: %w", cfg.Out, err)
	}
	cc.Out = f
	return f.Close, nil
}

type input struct {
	name string
	text string
}

// readInputs reads the named files, or r when there are none. "-" names
// r as well.
func readInputs(r io.Reader, files []string) ([]input, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	res := make([]input, 0, len(files))
	for _, file := range files {
		var (
			d   []byte
			err error
		)
		if file == "-" {
			d, err = io.ReadAll(r)
		} else {
			d, err = os.ReadFile(file)
		}
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", file, err)
		}
		res = append(res, input{name: file, text: string(d)})
	}
	return res, nil
}
