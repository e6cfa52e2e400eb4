// core/pairs/finder.go
package pairs

import "context"

// Pair is two words with no character in common.
type Pair struct {
	First  string
	Second string
}

func (p Pair) String() string { return p.First + " & " + p.Second }

func (p Pair) Disjoint() bool { return Disjoint(p.First, p.Second) }

type Options struct {
	// Dedupe emits each unordered pair once instead of once per direction.
	Dedupe bool
}

// Finder pairs every input word with each indexed word it shares no
// character with.
//
// For a word W, every word listed under one of W's characters is excluded
// (W included). The remaining candidates are gathered from the entries of
// the characters W lacks, in index order, each at most once. Since the
// outer loop covers every input word, each pair appears in both directions
// unless Options.Dedupe is set. Duplicate input words are not collapsed in
// the outer loop.
type Finder struct {
	words []string
	idx   *Index
	opts  Options
}

func NewFinder(words []string, opts Options) *Finder {
	ws := append([]string(nil), words...)
	return &Finder{words: ws, idx: NewIndex(ws), opts: opts}
}

func (f *Finder) Index() *Index { return f.idx }

// ForEach calls emit for every pair, outer loop in input order. It stops on
// the first emit error or when ctx is done and returns the number emitted.
func (f *Finder) ForEach(ctx context.Context, emit func(Pair) error) (int, error) {
	idx := f.idx
	// Stamps avoid clearing per-word scratch sets: slot == stamp means
	// "marked for the current word".
	excluded := make([]int, idx.Len())
	taken := make([]int, idx.Len())
	own := make([]int, len(idx.chars))

	type key struct{ a, b string }
	var emitted map[key]struct{}
	if f.opts.Dedupe {
		emitted = make(map[key]struct{})
	}

	total := 0
	for i, w := range f.words {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		stamp := i + 1

		for _, r := range CharsOf(w) {
			cid, ok := idx.charID[r]
			if !ok {
				continue
			}
			own[cid] = stamp
			for _, id := range idx.byChar[cid] {
				excluded[id] = stamp
			}
		}

		for cid := range idx.chars {
			if own[cid] == stamp {
				continue
			}
			for _, id := range idx.byChar[cid] {
				if excluded[id] == stamp || taken[id] == stamp {
					continue
				}
				taken[id] = stamp
				p := Pair{First: w, Second: idx.words[id]}
				if emitted != nil {
					k := key{p.First, p.Second}
					if k.b < k.a {
						k.a, k.b = k.b, k.a
					}
					if _, dup := emitted[k]; dup {
						continue
					}
					emitted[k] = struct{}{}
				}
				if err := emit(p); err != nil {
					return total, err
				}
				total++
			}
		}
	}
	return total, nil
}

// All collects every pair ForEach would emit.
func (f *Finder) All() []Pair {
	var out []Pair
	_, _ = f.ForEach(context.Background(), func(p Pair) error {
		out = append(out, p)
		return nil
	})
	return out
}
