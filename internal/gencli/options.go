package gencli

import (
	"flag"
	"fmt"
	"io"

	"nerdle-core/equation"
	"nerdle/internal/cli"
	"nerdle/internal/clibase"
	"nerdle/internal/cliutil"
)

type Options struct {
	clibase.Common

	Length     int
	NoOperator bool
}

// Config is the immutable generator setting the flags describe.
func (o Options) Config() equation.Config {
	return equation.Config{Length: o.Length, IncludeNoOperator: o.NoOperator}
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := cli.NewFlagSet(name)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options]\n", name)
		_, _ = fmt.Fprintln(out, "\nPrints every true equation of the given length, one per line.")

		_, _ = fmt.Fprintln(out, "\nEquations:")
		_, _ = fmt.Fprintf(out, "  -l, --length int            Characters per equation, '=' included [%s]\n", def("length"))
		_, _ = fmt.Fprintf(out, "      --no-operator           Also allow equations with no operator [%s]\n", def("no-operator"))
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for nerdle-gen.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "nerdle-gen", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Generate all classic 8-character equations:")
		_, _ = fmt.Fprintln(w, "  nerdle-gen > all-nerdles.txt")
		_, _ = fmt.Fprintln(w, "\nCount the 6-character (mini) equations:")
		_, _ = fmt.Fprintln(w, "  nerdle-gen --length 6 --count")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	clibase.Register(fs, &c)

	// Generator flags
	fs.IntVar(&o.Length, "length", equation.DefaultLength, fmt.Sprintf("characters per equation [%d]", equation.DefaultLength))
	fs.IntVar(&o.Length, "l", equation.DefaultLength, "alias of --length")
	fs.BoolVar(&o.NoOperator, "no-operator", false, "allow equations with no operator [false]")

	// Help / examples
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

	if err := clibase.AfterParse(&c, posArgs, false); err != nil {
		return o, err
	}
	if err := o.Config().Validate(); err != nil {
		return o, fmt.Errorf("--length: %w", err)
	}

	o.Common = c
	return o, nil
}
