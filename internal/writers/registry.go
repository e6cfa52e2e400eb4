// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"nerdle-core/pairs"
)

// Starter launches a writer goroutine; see streamutil.Start for the contract.
type Starter[T any] func(out io.Writer, bufSize int) (chan<- T, <-chan error)

// Writer registries (format → starter). Populated in init() blocks from
// equation.go and pair.go.
var (
	EquationWriters = map[string]Starter[string]{}
	PairWriters     = map[string]Starter[pairs.Pair]{}
)

// Register helpers (idempotent last-wins)
func RegisterEquation(format string, fn Starter[string]) { EquationWriters[format] = fn }
func RegisterPair(format string, fn Starter[pairs.Pair]) { PairWriters[format] = fn }

// StartEquationWriter streams words in the given format.
func StartEquationWriter(out io.Writer, format string, bufSize int) (chan<- string, <-chan error) {
	fn, ok := EquationWriters[format]
	if !ok {
		return startFailed[string](fmt.Errorf("unknown equation format %q (no writer registered)", format))
	}
	return fn(out, bufSize)
}

// StartPairWriter streams pairs in the given format.
func StartPairWriter(out io.Writer, format string, bufSize int) (chan<- pairs.Pair, <-chan error) {
	fn, ok := PairWriters[format]
	if !ok {
		return startFailed[pairs.Pair](fmt.Errorf("unknown pair format %q (no writer registered)", format))
	}
	return fn(out, bufSize)
}

// startFailed reports err at once and drains its input until closed.
func startFailed[T any](err error) (chan<- T, <-chan error) {
	in := make(chan T)
	done := make(chan error, 1)
	done <- err
	go func() {
		for range in {
		}
	}()
	return in, done
}
