// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"nerdle/internal/cliutil"
	"nerdle/internal/output"
)

// Common holds CLI fields shared by nerdle-gen, nerdle-unique and nerdle-pairs.
type Common struct {
	// Input (unused by nerdle-gen)
	Inputs []string

	// Output
	Output          string // text|jsonl
	Count           bool
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	// Output
	fs.StringVar(&c.Output, "output", output.FormatText, "output: "+strings.Join(output.Formats, " | ")+" [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&c.Count, "count", false, "print only the number of results [false]")
	fs.IntVar(&c.NoMatchExitCode, "no-match-exit-code", 0, "exit code when nothing is emitted [0]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// AfterParse expands positionals into c.Inputs (stdin when none) and runs
// shared validation. Tools that take no input pass takesInput=false.
func AfterParse(c *Common, posArgs []string, takesInput bool) error {
	if !takesInput {
		if len(posArgs) > 0 {
			return fmt.Errorf("unexpected argument %q", posArgs[0])
		}
		return Validate(c)
	}
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Inputs = append(c.Inputs, exp...)
	}
	if len(c.Inputs) == 0 {
		c.Inputs = []string{"-"}
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if !output.IsFormat(c.Output) {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
