package appcore

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"nerdle/internal/clibase"
	"nerdle/internal/version"
)

// ParseFailure turns a ParseArgs error into output and an exit code:
// examples and help exit 0, anything else prints the error and usage and
// exits 2.
func ParseFailure(err error, fs *flag.FlagSet, stdout, stderr io.Writer, examples func(io.Writer)) int {
	usage := func(w io.Writer) {
		fs.SetOutput(w)
		fs.Usage()
	}
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		return Report(stdout, stderr, 0, examples)
	case errors.Is(err, flag.ErrHelp):
		return Report(stdout, stderr, 0, usage)
	}
	_, _ = fmt.Fprintln(stderr, err)
	return Report(stdout, stderr, 2, usage)
}

func PrintVersion(stdout, stderr io.Writer, name string) int {
	return Report(stdout, stderr, 0, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "%s version %s\n", name, version.Version)
	})
}
