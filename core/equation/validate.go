package equation

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// MalformedWordError reports a word that cannot be split into exactly one
// expression and one result. The generator never builds such a word, so
// seeing one there is an internal invariant violation.
type MalformedWordError struct {
	Word   string
	Reason string
}

func (e *MalformedWordError) Error() string {
	return fmt.Sprintf("malformed equation %q: %s", e.Word, e.Reason)
}

// Split separates word at its single '='.
func Split(word string) (expression, result string, err error) {
	switch n := strings.Count(word, string(Equals)); {
	case n == 0:
		return "", "", &MalformedWordError{Word: word, Reason: "missing '='"}
	case n > 1:
		return "", "", &MalformedWordError{Word: word, Reason: fmt.Sprintf("%d '=' separators", n)}
	}
	i := strings.IndexByte(word, Equals)
	expression, result = word[:i], word[i+1:]
	if result == "" {
		return "", "", &MalformedWordError{Word: word, Reason: "empty result"}
	}
	return expression, result, nil
}

// ParseResult reads the right-hand side, ignoring leading zeros.
func ParseResult(result string) (*big.Int, error) {
	for i := 0; i < len(result); i++ {
		if !IsDigit(result[i]) {
			return nil, fmt.Errorf("%w: result %q is not a number", ErrSyntax, result)
		}
	}
	trimmed := strings.TrimLeft(result, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	v, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, fmt.Errorf("%w: result %q is not a number", ErrSyntax, result)
	}
	return v, nil
}

// Validate reports whether both sides of word have the same value.
//
// Division by zero and inexact division make the word invalid without an
// error. An error is returned only when the word is not shaped like an
// equation at all (see MalformedWordError and ErrSyntax).
func Validate(word string) (bool, error) {
	expression, result, err := Split(word)
	if err != nil {
		return false, err
	}
	lhs, err := evaluateSide(expression)
	if err != nil {
		return false, wrapWord(word, err)
	}
	if lhs == nil {
		return false, nil
	}
	rhs, err := ParseResult(result)
	if err != nil {
		return false, wrapWord(word, err)
	}
	return lhs.Cmp(rhs) == 0, nil
}

// evaluateSide returns nil, nil for an expression that is well formed but has
// no integer value.
func evaluateSide(expression string) (*big.Int, error) {
	v, err := Evaluate(RemoveLeadingZeros(expression))
	switch {
	case errors.Is(err, ErrDivisionByZero), errors.Is(err, ErrNonIntegral):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return v, nil
}

func wrapWord(word string, err error) error {
	return fmt.Errorf("equation %q: %w", word, err)
}

// validator memoizes the left side across candidates that share it, which
// is every run of ten completions the generator tries.
type validator struct {
	expr  string
	value *big.Int
	err   error
	ok    bool
}

func (v *validator) validate(word string) (bool, error) {
	expression, result, err := Split(word)
	if err != nil {
		return false, err
	}
	if !v.ok || v.expr != expression {
		v.expr = expression
		v.value, v.err = evaluateSide(expression)
		v.ok = true
	}
	if v.err != nil {
		return false, wrapWord(word, v.err)
	}
	if v.value == nil {
		return false, nil
	}
	rhs, err := ParseResult(result)
	if err != nil {
		return false, wrapWord(word, err)
	}
	return v.value.Cmp(rhs) == 0, nil
}
