// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"nerdle/internal/cmdutil"
	"nerdle/internal/writers"
)

type Options struct {
	Quiet           bool
	NoMatchExitCode int
	BufSize         int
}

// Source pushes items to emit until exhausted, emit fails, or ctx is done.
type Source[S any] func(ctx context.Context, emit func(S) error) error

type VisitorFunc[S, T any] func(S) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// errWriterStopped unblocks the source once the writer has given up.
var errWriterStopped = errors.New("writer stopped")

// Run wires source → visit → writer and maps the outcome to an exit code:
// 0 ok (broken pipe included), 3 runtime error, 130 canceled, and
// o.NoMatchExitCode when nothing was kept.
func Run[S, T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	src Source[S],
	visit VisitorFunc[S, T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	bufSize := o.BufSize
	if bufSize <= 0 {
		bufSize = 256
	}
	inCh, writeErr := wf.Start(outw, bufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		werr     error
		werrSeen bool
	)
	total, perr := cmdutil.RunStream[S, T](ctx, src, visit, func(x T) error {
		select {
		case inCh <- x:
			return nil
		case werr = <-writeErr:
			werrSeen = true
			return errWriterStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)
	if !werrSeen {
		werr = <-writeErr
	}

	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return 3
	}

	if perr != nil && !errors.Is(perr, errWriterStopped) {
		if errors.Is(perr, context.Canceled) {
			cmdutil.Warnf(stderr, o.Quiet, "interrupted after %d result(s)", total)
			return 130
		}
		cmdutil.Errorf(stderr, "%v", perr)
		return 3
	}
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

// Report prints a flushed message (help, version, examples) and maps the
// flush outcome to an exit code.
func Report(stdout, stderr io.Writer, code int, print func(io.Writer)) int {
	outw := bufio.NewWriter(stdout)
	print(outw)
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
