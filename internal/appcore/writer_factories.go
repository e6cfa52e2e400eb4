package appcore

import (
	"io"

	"nerdle-core/pairs"
	"nerdle/internal/writers"
)

// ---------------- Equation writer ----------------

type EquationWriterFactory struct {
	Format string
	Count  bool
}

func NewEquationWriterFactory(format string, count bool) EquationWriterFactory {
	return EquationWriterFactory{Format: format, Count: count}
}

func (w EquationWriterFactory) Start(out io.Writer, bufSize int) (chan<- string, <-chan error) {
	if w.Count {
		return writers.StartCountWriter[string](out, w.Format, bufSize)
	}
	return writers.StartEquationWriter(out, w.Format, bufSize)
}

// ---------------- Pair writer ----------------

type PairWriterFactory struct {
	Format string
	Count  bool
}

func NewPairWriterFactory(format string, count bool) PairWriterFactory {
	return PairWriterFactory{Format: format, Count: count}
}

func (w PairWriterFactory) Start(out io.Writer, bufSize int) (chan<- pairs.Pair, <-chan error) {
	if w.Count {
		return writers.StartCountWriter[pairs.Pair](out, w.Format, bufSize)
	}
	return writers.StartPairWriter(out, w.Format, bufSize)
}
