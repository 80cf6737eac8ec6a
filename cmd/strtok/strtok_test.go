package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
	"github.com/signadot/strtok/grammar"
	"github.com/signadot/strtok/symbol"
	"github.com/signadot/strtok/tokenizer"
)

const testGrammar = `
tokenizers:
  main:
    trim: true
    symbols:
    - nested: {open: "(", close: ")", inner: main, includeMarkers: true}
    - simple: {marker: ","}
  lossy:
    symbols:
    - nested: {open: "(", close: ")"}
`

func writeGrammar(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grammar.yaml")
	if err := os.WriteFile(path, []byte(testGrammar), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplitOne(t *testing.T) {
	path := writeGrammar(t)
	for _, tc := range []struct {
		name string
		cfg  MainConfig
		want string
	}{
		{"json", MainConfig{J: true}, `["f","(",["a","(",["b"],")"],")","c"]` + "\n"},
		{"yaml", MainConfig{Y: true}, ""},
		{"tree", MainConfig{}, "\"f\"\n\"(\"\n[\n  \"a\"\n  \"(\"\n  [\n    \"b\"\n  ]\n  \")\"\n]\n\")\"\n\"c\"\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mc := tc.cfg
			mc.Grammar = path
			cfg := &SplitConfig{MainConfig: &mc}
			tk, err := cfg.tokenizer()
			if err != nil {
				t.Fatal(err)
			}
			buf := bytes.NewBuffer(nil)
			if err := splitOne(cfg, buf, tk, "f(a (b)), c"); err != nil {
				t.Fatal(err)
			}
			if tc.name == "yaml" {
				if !strings.Contains(buf.String(), "- f\n") {
					t.Errorf("unexpected yaml output:\n%s", buf.String())
				}
				return
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizerSelection(t *testing.T) {
	path := writeGrammar(t)
	cfg := &MainConfig{Grammar: path, Name: "lossy"}
	tk, err := cfg.tokenizer()
	if err != nil {
		t.Fatal(err)
	}
	if tk.TrimsTokens() {
		t.Error("lossy tokenizer should not trim")
	}
	cfg.Name = "nope"
	if _, err := cfg.tokenizer(); err == nil {
		t.Error("expected error for unknown tokenizer")
	}
	cfg.Grammar = ""
	if _, err := cfg.tokenizer(); err == nil {
		t.Error("expected error without grammar")
	}
}

func TestRoundTrip(t *testing.T) {
	paren, err := symbol.NewNested("(", ")", symbol.IncludeMarkers(true))
	if err != nil {
		t.Fatal(err)
	}
	diff, err := roundTrip(tokenizer.New(tokenizer.WithSymbols(paren)), "a (b (c)) d")
	if err != nil {
		t.Fatal(err)
	}
	if diff != "" {
		t.Errorf("unexpected diff:\n%s", diff)
	}

	lossy, err := symbol.NewNested("(", ")")
	if err != nil {
		t.Fatal(err)
	}
	diff, err = roundTrip(tokenizer.New(tokenizer.WithSymbols(lossy)), "a (b) c")
	if err != nil {
		t.Fatal(err)
	}
	if diff == "" {
		t.Error("expected a diff when markers are dropped")
	}
}

func TestRoundTripUnclosed(t *testing.T) {
	paren, err := symbol.NewNested("(", ")")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := roundTrip(tokenizer.New(tokenizer.WithSymbols(paren)), "a (b"); err == nil {
		t.Error("expected unclosed error")
	}
}

func TestReadInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("from file"), 0644); err != nil {
		t.Fatal(err)
	}
	ins, err := readInputs(strings.NewReader("from stdin"), []string{path, "-"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ins) != 2 || ins[0].text != "from file" || ins[1].text != "from stdin" || ins[1].name != "-" {
		t.Errorf("got %+v", ins)
	}
	ins, err = readInputs(strings.NewReader("only stdin"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ins) != 1 || ins[0].text != "only stdin" {
		t.Errorf("got %+v", ins)
	}
	if _, err := readInputs(nil, []string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("expected error for missing file")
	}
}

type bufCloser struct {
	*bytes.Buffer
}

func (bufCloser) Close() error { return nil }

func TestMainCommand(t *testing.T) {
	path := writeGrammar(t)
	for _, tc := range []struct {
		name    string
		args    []string
		in      string
		want    string
		wantErr error
	}{
		{
			name: "split lines json",
			args: []string{"-g", path, "-j", "split", "-l"},
			in:   "f(a), c\nx\n",
			want: `["f","(",["a"],")","c"]` + "\n" + `["x"]` + "\n",
		},
		{
			name: "split stdin twice",
			args: []string{"-g", path, "-j", "split", "-", "-"},
			in:   "a",
			want: `["a"]` + "\n---\n[]\n",
		},
		{
			name: "check",
			args: []string{"-g", path, "check"},
			in:   "f(a (b)), c\n",
			want: "-: ok\n",
		},
		{
			name: "check quiet",
			args: []string{"-g", path, "check", "-q"},
			in:   "f(a)",
			want: "",
		},
		{
			name: "symbols",
			args: []string{"-g", path, "symbols"},
			want: "lossy:\n  1. nested \"(\" \")\"\nmain (trim):\n  1. nested \"(\" \")\" inner=main markers\n  2. simple \",\"\n",
		},
		{
			name:    "check lossy",
			args:    []string{"-g", path, "-n", "lossy", "check"},
			in:      "a (b) c",
			wantErr: errRoundTrip,
		},
		{
			name:    "unknown tokenizer",
			args:    []string{"-g", path, "-n", "nope", "split"},
			in:      "a",
			wantErr: grammar.ErrGrammar,
		},
		{
			name:    "json and yaml",
			args:    []string{"-g", path, "-j", "-y", "split"},
			wantErr: cli.ErrUsage,
		},
		{
			name:    "no command",
			args:    []string{"-g", path},
			wantErr: cli.ErrNoCommandProvided,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
			cc := &cli.Context{
				In:  io.NopCloser(strings.NewReader(tc.in)),
				Out: bufCloser{out},
				Err: bufCloser{errOut},
				Go:  context.Background(),
			}
			err := MainCommand().Run(cc, tc.args)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got %v want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("%v\n%s", err, errOut.String())
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMainCommandOutFile(t *testing.T) {
	path := writeGrammar(t)
	outPath := filepath.Join(t.TempDir(), "out.json")
	out := bytes.NewBuffer(nil)
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader("a, b")),
		Out: bufCloser{out},
		Err: bufCloser{bytes.NewBuffer(nil)},
		Go:  context.Background(),
	}
	if err := MainCommand().Run(cc, []string{"-g", path, "-o", outPath, "-j", "split"}); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected stdout output %q", out.String())
	}
	d, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`["a","b"]`+"\n", string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSubcommandUsageError(t *testing.T) {
	errOut := bytes.NewBuffer(nil)
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader("")),
		Out: bufCloser{bytes.NewBuffer(nil)},
		Err: bufCloser{errOut},
		Go:  context.Background(),
	}
	err := MainCommand().Run(cc, []string{"split"})
	var xc cli.ExitCodeErr
	if !errors.As(err, &xc) || xc != 1 {
		t.Fatalf("got %v want exit code 1", err)
	}
	if !strings.Contains(errOut.String(), "synopsis: split [files]") {
		t.Errorf("expected split usage, got:\n%s", errOut.String())
	}
}
