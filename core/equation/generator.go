// core/equation/generator.go
package equation

import (
	"context"
)

type frame struct {
	next []byte
	i    int
}

// Generator walks the tree of syntactically legal prefixes depth first and
// yields every arithmetically true word of cfg.Length characters.
//
// The walk uses an explicit stack, so words are produced one at a time
// without materializing the whole set. A Generator cannot be rewound;
// create a new one to enumerate again. It is not safe for concurrent use.
type Generator struct {
	cfg    Config
	prefix []byte
	stack  []frame

	completing bool // prefix is one short of a full word
	digit      int  // next completion digit to try

	v    validator
	err  error
	done bool
}

func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:    cfg,
		prefix: make([]byte, 0, cfg.Length),
		stack:  make([]frame, 0, cfg.Length),
	}
	g.stack = append(g.stack, frame{next: NextChars(cfg, nil)})
	return g, nil
}

// Next returns the next valid word. ok is false once the tree is exhausted
// or an error stopped the walk; check Err afterwards.
func (g *Generator) Next() (word string, ok bool) {
	for {
		if g.done || g.err != nil {
			return "", false
		}

		if g.completing {
			for g.digit < len(digitChars) {
				candidate := string(append(g.prefix, digitChars[g.digit]))
				g.digit++
				valid, err := g.v.validate(candidate)
				if err != nil {
					g.err = err
					return "", false
				}
				if valid {
					return candidate, true
				}
			}
			g.completing = false
			g.prefix = g.prefix[:len(g.prefix)-1]
			continue
		}

		n := len(g.stack)
		if n == 0 {
			g.done = true
			return "", false
		}
		top := &g.stack[n-1]
		if top.i >= len(top.next) {
			g.stack = g.stack[:n-1]
			if len(g.prefix) > 0 {
				g.prefix = g.prefix[:len(g.prefix)-1]
			}
			continue
		}

		c := top.next[top.i]
		top.i++
		g.prefix = append(g.prefix, c)
		if len(g.prefix) == g.cfg.Length-1 {
			g.completing = true
			g.digit = 0
			continue
		}
		g.stack = append(g.stack, frame{next: NextChars(g.cfg, g.prefix)})
	}
}

// Err returns the error, if any, that ended the walk early.
func (g *Generator) Err() error { return g.err }

// Generate streams every valid word for cfg to emit, in enumeration order.
// It stops at the first emit error or when ctx is done, and returns the
// number of words emitted.
func Generate(ctx context.Context, cfg Config, emit func(string) error) (int, error) {
	g, err := NewGenerator(cfg)
	if err != nil {
		return 0, err
	}
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		w, ok := g.Next()
		if !ok {
			return n, g.Err()
		}
		if err := emit(w); err != nil {
			return n, err
		}
		n++
	}
}

// All collects every valid word for cfg. Intended for small lengths.
func All(cfg Config) ([]string, error) {
	var out []string
	_, err := Generate(context.Background(), cfg, func(w string) error {
		out = append(out, w)
		return nil
	})
	return out, err
}
