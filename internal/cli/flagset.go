package cli

import (
	"flag"
	"io"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError whose parse
// errors are not printed; apps report them and print Usage themselves.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}
