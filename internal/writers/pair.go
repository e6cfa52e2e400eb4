package writers

import (
	"io"

	"nerdle-core/pairs"
	"nerdle/internal/output"
	"nerdle/internal/streamutil"
)

func init() {
	RegisterPair(output.FormatText, StartPairTextWriter)
	RegisterPair(output.FormatJSONL, StartPairJSONLWriter)
}

// StartPairTextWriter prints "first & second" per line.
func StartPairTextWriter(out io.Writer, bufSize int) (chan<- pairs.Pair, <-chan error) {
	return streamutil.StartLines[pairs.Pair](out, bufSize, output.PairLine, IsBrokenPipe)
}

// StartPairJSONLWriter streams each pair as api.PairV1.
func StartPairJSONLWriter(out io.Writer, bufSize int) (chan<- pairs.Pair, <-chan error) {
	return streamutil.StartJSONL[pairs.Pair](out, bufSize,
		func(p pairs.Pair) any { return output.ToAPIPair(p) },
		IsBrokenPipe,
	)
}
