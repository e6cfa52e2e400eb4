package equation

var (
	digitChars      = []byte(Digits)
	operatorChars   = []byte(Operators)
	lastExprChars   = append([]byte(Digits), Equals)
	midChars        = append([]byte(Digits), Operators...)
	midCharsOrEqual = append(append([]byte(Digits), Operators...), Equals)
	equalsOnly      = []byte{Equals}
)

// NextChars returns the characters that may legally follow prefix, in
// enumeration order. The returned slice is shared; callers must not modify it.
//
// Rules while still building the left side (no '=' yet), first match wins:
//   - empty prefix or prefix ending in an operator: digits
//   - prefix at MaxExpressionLength: '=' only
//   - prefix at MaxExpressionLength-2 with no operator so far: operators only
//   - prefix at MaxExpressionLength-1: digits or '='
//   - otherwise digits or operators, plus '=' once an operator has been
//     used (or always, with IncludeNoOperator)
//
// After '=' only digits follow.
func NextChars(cfg Config, prefix []byte) []byte {
	inExpression := true
	operatorPresent := false
	for _, c := range prefix {
		if c == Equals {
			inExpression = false
			break
		}
		if IsOperator(c) {
			operatorPresent = true
		}
	}
	if !inExpression {
		return digitChars
	}

	n := len(prefix)
	maxExpr := cfg.MaxExpressionLength()
	switch {
	case n == 0:
		return digitChars
	case IsOperator(prefix[n-1]):
		return digitChars
	case n == maxExpr:
		return equalsOnly
	case n == maxExpr-2 && !operatorPresent:
		return operatorChars
	case n == maxExpr-1:
		return lastExprChars
	case operatorPresent || cfg.IncludeNoOperator:
		return midCharsOrEqual
	default:
		return midChars
	}
}
