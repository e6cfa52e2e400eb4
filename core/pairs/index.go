// core/pairs/index.go
package pairs

// Separator is ignored when comparing character sets.
const Separator = '='

// CharsOf returns the distinct characters of word in first-seen order,
// leaving out the '=' separator.
func CharsOf(word string) []rune {
	out := make([]rune, 0, len(word))
	for _, r := range word {
		if r == Separator || containsRune(out, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// Disjoint reports whether a and b share no character other than '='.
func Disjoint(a, b string) bool {
	for _, r := range CharsOf(a) {
		for _, s := range b {
			if s == r {
				return false
			}
		}
	}
	return true
}

// Index maps each character to the distinct words containing it.
// Words and characters keep first-seen order, so iteration is stable.
// An Index is read-only once built.
type Index struct {
	words  []string
	wordID map[string]int

	chars  []rune
	charID map[rune]int
	byChar [][]int // charID -> word ids, ascending
}

func NewIndex(words []string) *Index {
	idx := &Index{
		wordID: make(map[string]int, len(words)),
		charID: make(map[rune]int),
	}
	for _, w := range words {
		if _, ok := idx.wordID[w]; ok {
			continue
		}
		id := len(idx.words)
		idx.words = append(idx.words, w)
		idx.wordID[w] = id
		for _, r := range CharsOf(w) {
			cid, ok := idx.charID[r]
			if !ok {
				cid = len(idx.chars)
				idx.chars = append(idx.chars, r)
				idx.charID[r] = cid
				idx.byChar = append(idx.byChar, nil)
			}
			idx.byChar[cid] = append(idx.byChar[cid], id)
		}
	}
	return idx
}

// Len is the number of distinct indexed words.
func (idx *Index) Len() int { return len(idx.words) }

// Chars returns the indexed characters in first-seen order.
func (idx *Index) Chars() []rune { return append([]rune(nil), idx.chars...) }

// Lookup returns the words containing c, in first-seen order.
func (idx *Index) Lookup(c rune) []string {
	cid, ok := idx.charID[c]
	if !ok {
		return nil
	}
	out := make([]string, len(idx.byChar[cid]))
	for i, id := range idx.byChar[cid] {
		out[i] = idx.words[id]
	}
	return out
}
