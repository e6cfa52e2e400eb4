package uniquecli

import (
	"flag"
	"fmt"
	"io"

	"nerdle/internal/cli"
	"nerdle/internal/clibase"
	"nerdle/internal/cliutil"
)

type Options struct {
	clibase.Common

	SkipBlank bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] [file ...]\n", name)
		_, _ = fmt.Fprintln(out, "\nKeeps the words in which no character repeats ('=' included).")
		_, _ = fmt.Fprintln(out, "Spaces inside a line are ignored.")

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "  file                        Word list(s), plain or gzip; '-' or none for STDIN")
		_, _ = fmt.Fprintf(out, "      --skip-blank            Drop lines that are empty after normalization [%s]\n", def("skip-blank"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for nerdle-unique.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "nerdle-unique", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Keep only equations without repeated characters:")
		_, _ = fmt.Fprintln(w, "  nerdle-unique < all-nerdles.txt > unique-char-nerdles.txt")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	fs.BoolVar(&o.SkipBlank, "skip-blank", false, "drop blank lines instead of passing them through [false]")

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
