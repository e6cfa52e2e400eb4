// internal/uniqueapp/app.go
package uniqueapp

import (
	"context"
	"io"
	"os"

	"nerdle-core/wordio"
	"nerdle/internal/appcore"
	"nerdle/internal/cmdutil"
	"nerdle/internal/uniquecli"
	"nerdle/internal/visitors"
)

const name = "nerdle-unique"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunContextIO(parent, argv, os.Stdin, stdout, stderr)
}

// RunContextIO is RunContext with '-' bound to stdin.
func RunContextIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := uniquecli.NewFlagSet(name)
	opts, err := uniquecli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailure(err, fs, stdout, stderr, uniquecli.PrintExamples)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, stderr, name)
	}

	src := func(ctx context.Context, emit func(string) error) error {
		return wordio.StreamPaths(ctx, opts.Inputs, stdin, emit)
	}
	v := &visitors.Unique{SkipBlank: opts.SkipBlank}

	code := appcore.Run[string, string](
		parent, stdout, stderr,
		appcore.Options{Quiet: opts.Quiet, NoMatchExitCode: opts.NoMatchExitCode},
		src,
		v.Visit,
		appcore.NewEquationWriterFactory(opts.Output, opts.Count),
	)
	if v.Blank > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "skipped %d blank line(s)", v.Blank)
	}
	return code
}
