// internal/pairsapp/app.go
package pairsapp

import (
	"context"
	"io"
	"os"

	"nerdle-core/pairs"
	"nerdle-core/wordio"
	"nerdle/internal/appcore"
	"nerdle/internal/cmdutil"
	"nerdle/internal/pairscli"
	"nerdle/internal/visitors"
)

const name = "nerdle-pairs"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunContextIO(parent, argv, os.Stdin, stdout, stderr)
}

// RunContextIO is RunContext with '-' bound to stdin.
func RunContextIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pairscli.NewFlagSet(name)
	opts, err := pairscli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailure(err, fs, stdout, stderr, pairscli.PrintExamples)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, stderr, name)
	}

	// The index needs the whole collection, so words are read up front and
	// pairs are streamed afterwards.
	lines := &visitors.Words{SkipBlank: opts.SkipBlank}
	src := func(ctx context.Context, emit func(pairs.Pair) error) error {
		var words []string
		err := wordio.StreamPaths(ctx, opts.Inputs, stdin, func(line string) error {
			if keep, w, _ := lines.Visit(line); keep {
				words = append(words, w)
			}
			return nil
		})
		if err != nil {
			return err
		}
		_, err = pairs.NewFinder(words, opts.FinderOptions()).ForEach(ctx, emit)
		return err
	}

	code := appcore.Run[pairs.Pair, pairs.Pair](
		parent, stdout, stderr,
		appcore.Options{Quiet: opts.Quiet, NoMatchExitCode: opts.NoMatchExitCode},
		src,
		visitors.PassThrough[pairs.Pair]{}.Visit,
		appcore.NewPairWriterFactory(opts.Output, opts.Count),
	)
	if lines.Blank > 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "skipped %d blank line(s)", lines.Blank)
	}
	return code
}
