// internal/output/output.go
package output

import (
	"strings"

	"nerdle-core/pairs"
	"nerdle/pkg/api"
)

// Output formats shared by every tool.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// Formats lists the accepted --output values in help order.
var Formats = []string{FormatText, FormatJSONL}

func IsFormat(s string) bool {
	for _, f := range Formats {
		if f == s {
			return true
		}
	}
	return false
}

// ToAPIEquation converts a word to the stable wire schema (v1). Words
// without '=' (possible in filter input) keep everything as the expression.
func ToAPIEquation(word string) api.EquationV1 {
	expr, res, _ := strings.Cut(word, "=")
	return api.EquationV1{Word: word, Expression: expr, Result: res}
}

func ToAPIPair(p pairs.Pair) api.PairV1 {
	return api.PairV1{First: p.First, Second: p.Second}
}

// PairLine renders a pair the way the text format prints it.
func PairLine(p pairs.Pair) string { return p.String() }
