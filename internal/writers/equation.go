package writers

import (
	"io"

	"nerdle/internal/output"
	"nerdle/internal/streamutil"
)

func init() {
	RegisterEquation(output.FormatText, StartEquationTextWriter)
	RegisterEquation(output.FormatJSONL, StartEquationJSONLWriter)
}

// StartEquationTextWriter prints one word per line.
func StartEquationTextWriter(out io.Writer, bufSize int) (chan<- string, <-chan error) {
	return streamutil.StartLines[string](out, bufSize, func(w string) string { return w }, IsBrokenPipe)
}

// StartEquationJSONLWriter streams each word as api.EquationV1.
func StartEquationJSONLWriter(out io.Writer, bufSize int) (chan<- string, <-chan error) {
	return streamutil.StartJSONL[string](out, bufSize,
		func(w string) any { return output.ToAPIEquation(w) },
		IsBrokenPipe,
	)
}
