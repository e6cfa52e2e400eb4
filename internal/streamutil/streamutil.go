// internal/streamutil/streamutil.go
package streamutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across stream writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up a writer goroutine for values of type T.
//   - write: renders one value onto the buffered writer
//   - finish: optional; runs after the input channel closes, before the flush
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// The returned error channel receives exactly one value: on success once the
// input is closed and flushed, on a write error immediately. After a write
// error the goroutine keeps draining the input so senders never block.
func Start[T any](
	out io.Writer,
	bufSize int,
	write func(*bufio.Writer, T) error,
	finish func(*bufio.Writer) error,
	isBroken func(error) bool,
) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		// Report first so a blocked sender can stop, then drain.
		fail := func(err error) {
			done <- err
			for range in {
			}
		}

		for v := range in {
			if err := write(bw, v); err != nil {
				fail(err)
				return
			}
		}
		if finish != nil {
			if err := finish(bw); err != nil {
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !isBroken(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}

// StartLines writes one rendered line per value.
func StartLines[T any](out io.Writer, bufSize int, render func(T) string, isBroken func(error) bool) (chan<- T, <-chan error) {
	return Start[T](out, bufSize,
		func(bw *bufio.Writer, v T) error {
			if _, err := bw.WriteString(render(v)); err != nil {
				return err
			}
			return bw.WriteByte('\n')
		},
		nil,
		isBroken,
	)
}

// StartJSONL writes one JSON document per line; wire converts to the
// stable schema.
func StartJSONL[T any](out io.Writer, bufSize int, wire func(T) any, isBroken func(error) bool) (chan<- T, <-chan error) {
	var enc *json.Encoder
	return Start[T](out, bufSize,
		func(bw *bufio.Writer, v T) error {
			if enc == nil {
				enc = json.NewEncoder(bw)
			}
			return enc.Encode(wire(v))
		},
		nil,
		isBroken,
	)
}
