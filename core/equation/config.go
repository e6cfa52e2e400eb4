// core/equation/config.go
package equation

import "fmt"

// Character classes, in canonical enumeration order.
const (
	Digits    = "0123456789"
	Operators = "+-*/"
	Equals    = '='
)

const (
	DefaultLength = 8
	// MinLength is the shortest word with room for "d=d".
	MinLength = 3
	// MaxLength bounds the generator's buffers; enumeration is exponential
	// in Length long before this.
	MaxLength = 64
)

// Config fixes the shape of the words a Generator produces.
// It is a plain value; copies are independent.
type Config struct {
	Length            int  // total word length, including '='
	IncludeNoOperator bool // allow equations whose left side has no operator
}

// DefaultConfig returns the classic 8-character game setting.
func DefaultConfig() Config {
	return Config{Length: DefaultLength}
}

// MaxExpressionLength reserves one slot for '=' and at least one result digit.
func (c Config) MaxExpressionLength() int { return c.Length - 2 }

// Validate reports whether Length is within [MinLength, MaxLength].
func (c Config) Validate() error {
	if c.Length < MinLength {
		return fmt.Errorf("equation length must be >= %d (got %d)", MinLength, c.Length)
	}
	if c.Length > MaxLength {
		return fmt.Errorf("equation length must be <= %d (got %d)", MaxLength, c.Length)
	}
	return nil
}

func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

func IsOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/':
		return true
	}
	return false
}
