package pairs

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"nerdle-core/equation"
	"nerdle-core/unique"
)

const (
	a = "1+2=3"
	b = "9-5=4"
	c = "8/4=2"
	d = "7-6=1"
)

func strs(ps []Pair) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestFinderBothDirections(t *testing.T) {
	got := strs(NewFinder([]string{a, b, c, d}, Options{}).All())
	want := []string{
		"1+2=3 & 9-5=4",
		"9-5=4 & 1+2=3",
		"8/4=2 & 7-6=1",
		"7-6=1 & 8/4=2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestFinderDedupe(t *testing.T) {
	got := strs(NewFinder([]string{a, b, c, d}, Options{Dedupe: true}).All())
	want := []string{"1+2=3 & 9-5=4", "8/4=2 & 7-6=1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestFinderDuplicateInputWords(t *testing.T) {
	got := strs(NewFinder([]string{a, b, a}, Options{}).All())
	want := []string{"1+2=3 & 9-5=4", "9-5=4 & 1+2=3", "1+2=3 & 9-5=4"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}

	got = strs(NewFinder([]string{a, b, a}, Options{Dedupe: true}).All())
	if !reflect.DeepEqual(got, want[:1]) {
		t.Fatalf("dedupe: got %v", got)
	}
}

func TestFinderSeparatorOnlyWord(t *testing.T) {
	got := strs(NewFinder([]string{"=", a, b}, Options{}).All())
	want := []string{
		"= & 1+2=3",
		"= & 9-5=4",
		"1+2=3 & 9-5=4",
		"9-5=4 & 1+2=3",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v\nwant %v", got, want)
	}
}

func TestFinderStopsOnEmitError(t *testing.T) {
	stop := errors.New("stop")
	n, err := NewFinder([]string{a, b, c, d}, Options{}).ForEach(context.Background(), func(Pair) error {
		return stop
	})
	if !errors.Is(err, stop) || n != 0 {
		t.Fatalf("want stop after 0, got n=%d err=%v", n, err)
	}
}

func TestFinderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFinder([]string{a, b}, Options{}).ForEach(ctx, func(Pair) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

// Every disjoint ordered pair of distinct words is found, and nothing else.
func TestFinderMatchesBruteForce(t *testing.T) {
	all, err := equation.All(equation.Config{Length: 6})
	if err != nil {
		t.Fatal(err)
	}
	var words []string
	for _, w := range all {
		if u, ok := unique.Filter(w); ok {
			words = append(words, u)
		}
	}
	if len(words) < 10 {
		t.Fatalf("too few unique words to be meaningful: %d", len(words))
	}

	want := map[Pair]bool{}
	for _, x := range words {
		for _, y := range words {
			if x != y && Disjoint(x, y) {
				want[Pair{x, y}] = true
			}
		}
	}

	got := map[Pair]bool{}
	for _, p := range NewFinder(words, Options{}).All() {
		if !p.Disjoint() {
			t.Fatalf("emitted non-disjoint pair %s", p)
		}
		if got[p] {
			t.Fatalf("pair %s emitted twice in one direction", p)
		}
		got[p] = true
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %d pairs, want %d", len(got), len(want))
	}

	deduped := NewFinder(words, Options{Dedupe: true}).All()
	if 2*len(deduped) != len(want) {
		t.Fatalf("dedupe: got %d pairs, want %d", len(deduped), len(want)/2)
	}
}

func TestIndex(t *testing.T) {
	idx := NewIndex([]string{a, c, a})
	if idx.Len() != 2 {
		t.Fatalf("Len = %d, want 2", idx.Len())
	}
	if got := idx.Lookup('2'); !reflect.DeepEqual(got, []string{a, c}) {
		t.Fatalf("Lookup('2') = %v", got)
	}
	if got := idx.Lookup('='); got != nil {
		t.Fatalf("'=' must not be indexed, got %v", got)
	}
	if got := string(idx.Chars()); got != "1+238/4" {
		t.Fatalf("Chars = %q", got)
	}
}

func TestCharsOf(t *testing.T) {
	if got := string(CharsOf("12+21=33")); got != "12+3" {
		t.Fatalf("CharsOf = %q", got)
	}
}
