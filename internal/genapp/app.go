// internal/genapp/app.go
package genapp

import (
	"context"
	"errors"
	"fmt"
	"io"

	"nerdle-core/equation"
	"nerdle/internal/appcore"
	"nerdle/internal/gencli"
	"nerdle/internal/visitors"
)

const name = "nerdle-gen"

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := gencli.NewFlagSet(name)
	opts, err := gencli.ParseArgs(fs, argv)
	if err != nil {
		return appcore.ParseFailure(err, fs, stdout, stderr, gencli.PrintExamples)
	}
	if opts.Version {
		return appcore.PrintVersion(stdout, stderr, name)
	}

	cfg := opts.Config()
	src := func(ctx context.Context, emit func(string) error) error {
		_, err := equation.Generate(ctx, cfg, emit)
		var mw *equation.MalformedWordError
		if errors.As(err, &mw) {
			return fmt.Errorf("internal error: generator built %w", err)
		}
		return err
	}

	return appcore.Run[string, string](
		parent, stdout, stderr,
		appcore.Options{Quiet: opts.Quiet, NoMatchExitCode: opts.NoMatchExitCode},
		src,
		visitors.PassThrough[string]{}.Visit,
		appcore.NewEquationWriterFactory(opts.Output, opts.Count),
	)
}
