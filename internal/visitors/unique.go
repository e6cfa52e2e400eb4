// internal/visitors/unique.go
package visitors

import (
	"nerdle-core/unique"
)

// Unique keeps lines whose normalized word has no repeated character. A
// line that is empty after normalization qualifies; with SkipBlank it is
// dropped and counted instead.
type Unique struct {
	SkipBlank bool
	Blank     int
}

func (v *Unique) Visit(line string) (bool, string, error) {
	word, keep := unique.Filter(line)
	if word == "" && v.SkipBlank {
		v.Blank++
		return false, "", nil
	}
	return keep, word, nil
}
