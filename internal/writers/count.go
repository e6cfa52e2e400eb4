package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"

	"nerdle/internal/output"
	"nerdle/internal/streamutil"
	"nerdle/pkg/api"
)

// StartCountWriter consumes values of any type and writes only their total:
// a bare number for text, api.CountV1 for JSONL.
func StartCountWriter[T any](out io.Writer, format string, bufSize int) (chan<- T, <-chan error) {
	n := 0
	return streamutil.Start[T](out, bufSize,
		func(*bufio.Writer, T) error {
			n++
			return nil
		},
		func(bw *bufio.Writer) error {
			if format == output.FormatJSONL {
				return json.NewEncoder(bw).Encode(api.CountV1{Count: n})
			}
			_, err := bw.WriteString(strconv.Itoa(n) + "\n")
			return err
		},
		IsBrokenPipe,
	)
}
