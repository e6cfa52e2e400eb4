package equation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func mustAll(t *testing.T, cfg Config) []string {
	t.Helper()
	got, err := All(cfg)
	if err != nil {
		t.Fatalf("All(%+v): %v", cfg, err)
	}
	return got
}

func TestGenerateLength3(t *testing.T) {
	got := mustAll(t, Config{Length: 3})
	var want []string
	for d := '0'; d <= '9'; d++ {
		want = append(want, fmt.Sprintf("%c=%c", d, d))
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("L=3\n got: %v\nwant: %v", got, want)
	}
}

// Hand enumeration: "0d=d" keeps its value once the leading zero is gone,
// and "d=0d" pads the result.
func TestGenerateLength4Order(t *testing.T) {
	got := mustAll(t, Config{Length: 4})
	var want []string
	for d := '0'; d <= '9'; d++ {
		want = append(want, fmt.Sprintf("0%c=%c", d, d))
	}
	for d := '0'; d <= '9'; d++ {
		want = append(want, fmt.Sprintf("%c=0%c", d, d))
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("L=4\n got: %v\nwant: %v", got, want)
	}
}

// For L=5 every word is "a op b = c"; compare against a brute force pass
// over the same shape.
func TestGenerateLength5Exhaustive(t *testing.T) {
	got := mustAll(t, Config{Length: 5})

	var want []string
	for a := 0; a <= 9; a++ {
		for _, op := range Operators {
			for b := 0; b <= 9; b++ {
				for c := 0; c <= 9; c++ {
					w := fmt.Sprintf("%d%c%d=%d", a, op, b, c)
					ok, err := Validate(w)
					if err != nil {
						t.Fatalf("validate %q: %v", w, err)
					}
					if ok {
						want = append(want, w)
					}
				}
			}
		}
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("L=5 mismatch: got %d words, want %d\n got: %v\nwant: %v", len(got), len(want), got, want)
	}

	n := 0
	for _, w := range got {
		if w == "1+1=2" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("want 1+1=2 exactly once, got %d", n)
	}
	for _, w := range []string{"1/0=0", "0/0=0", "3/2=1"} {
		for _, g := range got {
			if g == w {
				t.Fatalf("%q must not be generated", w)
			}
		}
	}
}

func TestGenerateNoOperatorFlag(t *testing.T) {
	hasOperator := func(w string) bool {
		expr, _, err := Split(w)
		if err != nil {
			t.Fatalf("split %q: %v", w, err)
		}
		return strings.ContainsAny(expr, Operators)
	}

	for _, l := range []int{5, 6, 7} {
		for _, w := range mustAll(t, Config{Length: l}) {
			if !hasOperator(w) {
				t.Fatalf("L=%d: %q has no operator", l, w)
			}
		}
	}

	with := mustAll(t, Config{Length: 6, IncludeNoOperator: true})
	found := map[string]bool{}
	for _, w := range with {
		found[w] = true
	}
	for _, w := range []string{"1=0001", "0=0000", "7=0007"} {
		if !found[w] {
			t.Fatalf("IncludeNoOperator: missing %q", w)
		}
	}
	if !found["1+2=03"] {
		t.Fatalf("IncludeNoOperator must keep operator words")
	}
}

func TestGenerateValidityAndUniqueness(t *testing.T) {
	for _, cfg := range []Config{{Length: 6}, {Length: 7}, {Length: 7, IncludeNoOperator: true}} {
		words := mustAll(t, cfg)
		if len(words) == 0 {
			t.Fatalf("%+v: no words", cfg)
		}
		seen := make(map[string]struct{}, len(words))
		for _, w := range words {
			if len(w) != cfg.Length {
				t.Fatalf("%+v: %q has wrong length", cfg, w)
			}
			if _, dup := seen[w]; dup {
				t.Fatalf("%+v: duplicate %q", cfg, w)
			}
			seen[w] = struct{}{}

			expr, res, err := Split(w)
			if err != nil {
				t.Fatalf("%+v: %v", cfg, err)
			}
			lhs, err := Evaluate(RemoveLeadingZeros(expr))
			if err != nil {
				t.Fatalf("%+v: %q evaluates with error %v", cfg, w, err)
			}
			rhs, err := ParseResult(res)
			if err != nil {
				t.Fatalf("%+v: %q result: %v", cfg, w, err)
			}
			if lhs.Cmp(rhs) != 0 {
				t.Fatalf("%+v: %q: %s != %s", cfg, w, lhs, rhs)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := Config{Length: 7}
	a := mustAll(t, cfg)
	b := mustAll(t, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs produced different sequences")
	}
}

func TestGeneratorExhaustedStaysExhausted(t *testing.T) {
	g, err := NewGenerator(Config{Length: 3})
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for {
		if _, ok := g.Next(); !ok {
			break
		}
		n++
	}
	if n != 10 {
		t.Fatalf("want 10 words, got %d", n)
	}
	if _, ok := g.Next(); ok {
		t.Fatal("Next after exhaustion returned a word")
	}
	if g.Err() != nil {
		t.Fatalf("unexpected err: %v", g.Err())
	}
}

func TestNewGeneratorRejectsLengthOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 2, MaxLength + 1, 2_000_000_000} {
		if _, err := NewGenerator(Config{Length: n}); err == nil {
			t.Fatalf("expected error for length %d", n)
		}
	}
	if err := (Config{Length: MaxLength}).Validate(); err != nil {
		t.Fatalf("MaxLength rejected: %v", err)
	}
}

func TestGenerateStopsOnEmitError(t *testing.T) {
	stop := errors.New("stop")
	n, err := Generate(context.Background(), Config{Length: 5}, func(string) error {
		return stop
	})
	if !errors.Is(err, stop) || n != 0 {
		t.Fatalf("want stop after 0, got n=%d err=%v", n, err)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n, err := Generate(ctx, Config{Length: 6}, func(string) error {
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 word before cancel, got %d", n)
	}
}

func TestNextCharsRules(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		prefix string
		want   string
	}{
		{"", Digits},
		{"1+", Digits},
		{"12+", Digits},
		{"1234", Operators},       // max-2 with no operator
		{"12+34", Digits + "="},   // last expression slot
		{"12+345", "="},           // expression full
		{"1", Digits + Operators}, // '=' needs an operator first
		{"1+2", Digits + Operators + "="},
		{"1+2=", Digits},
		{"1+2=3", Digits},
	}
	for _, tc := range cases {
		if got := string(NextChars(cfg, []byte(tc.prefix))); got != tc.want {
			t.Errorf("NextChars(%q) = %q, want %q", tc.prefix, got, tc.want)
		}
	}

	loose := Config{Length: 8, IncludeNoOperator: true}
	if got := string(NextChars(loose, []byte("1"))); got != Digits+Operators+"=" {
		t.Errorf("IncludeNoOperator: NextChars(\"1\") = %q", got)
	}
}
