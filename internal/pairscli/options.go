package pairscli

import (
	"flag"
	"fmt"
	"io"

	"nerdle-core/pairs"
	"nerdle/internal/cli"
	"nerdle/internal/clibase"
	"nerdle/internal/cliutil"
)

type Options struct {
	clibase.Common

	Dedupe    bool
	SkipBlank bool
}

func (o Options) FinderOptions() pairs.Options {
	return pairs.Options{Dedupe: o.Dedupe}
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [file ...]\n", name)
		_, _ = fmt.Fprintln(out, "\nPrints every pair of words sharing no character ('=' aside) as \"A & B\".")
		_, _ = fmt.Fprintln(out, "Each pair is printed once per direction unless --dedupe is given.")

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  file                        Word list(s), plain or gzip; '-' or none for STDIN")
		_, _ = fmt.Fprintf(out, "      --skip-blank            Drop blank lines instead of pairing the empty word [%s]\n", def("skip-blank"))

		_, _ = fmt.Fprintln(out, "\nPairs:")
		_, _ = fmt.Fprintf(out, "      --dedupe                Print each unordered pair once [%s]\n", def("dedupe"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for nerdle-pairs.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "nerdle-pairs", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Find pairs of unique-character equations with no overlap:")
		_, _ = fmt.Fprintln(w, "  nerdle-pairs < unique-char-nerdles.txt > unique-char-pairs.txt")
		_, _ = fmt.Fprintln(w, "\nOne line per unordered pair:")
		_, _ = fmt.Fprintln(w, "  nerdle-pairs --dedupe unique-char-nerdles.txt")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fs.BoolVar(&o.Dedupe, "dedupe", false, "print each unordered pair once [false]")
	fs.BoolVar(&o.SkipBlank, "skip-blank", false, "drop blank lines instead of pairing the empty word [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}
	if err := clibase.AfterParse(&c, posArgs, true); err != nil {
		return o, err
	}
	o.Common = c
	return o, nil
}
