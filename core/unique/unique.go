// Package unique selects words in which no character repeats.
package unique

import "strings"

// Normalize removes every space and trims surrounding whitespace.
func Normalize(line string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, " ", ""))
}

// HasUniqueChars reports whether no character of word occurs twice.
// '=' counts like any other character.
func HasUniqueChars(word string) bool {
	seen := make(map[rune]struct{}, len(word))
	for _, r := range word {
		if _, dup := seen[r]; dup {
			return false
		}
		seen[r] = struct{}{}
	}
	return true
}

// Filter normalizes line and reports whether it passes.
func Filter(line string) (word string, keep bool) {
	word = Normalize(line)
	return word, HasUniqueChars(word)
}
