package visitors

import (
	"strings"
	"unicode"
)

// Words trims trailing whitespace from each line. Interior characters,
// spaces included, are left alone. A blank line is an empty word unless
// SkipBlank drops it.
type Words struct {
	SkipBlank bool
	Blank     int
}

func (v *Words) Visit(line string) (bool, string, error) {
	w := strings.TrimRightFunc(line, unicode.IsSpace)
	if w == "" && v.SkipBlank {
		v.Blank++
		return false, "", nil
	}
	return true, w, nil
}
