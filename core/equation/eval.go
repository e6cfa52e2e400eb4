package equation

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDivisionByZero marks an expression that divides by a zero operand.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNonIntegral marks a division that leaves a remainder.
	ErrNonIntegral = errors.New("non-integral quotient")
	// ErrSyntax marks text that is not an operator-separated list of numbers.
	ErrSyntax = errors.New("invalid expression syntax")
)

// RemoveLeadingZeros drops the leading zeros of every multi-digit number in
// expr while keeping a lone "0". A '0' survives when it is the last
// character, when the next character is not a digit, or when the previously
// kept character is a digit.
func RemoveLeadingZeros(expr string) string {
	out := make([]byte, 0, len(expr))
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		if c != '0' {
			out = append(out, c)
			continue
		}
		switch {
		case i == len(expr)-1:
			out = append(out, c)
		case !IsDigit(expr[i+1]):
			out = append(out, c)
		case len(out) > 0 && IsDigit(out[len(out)-1]):
			out = append(out, c)
		}
	}
	return string(out)
}

// Evaluate computes expr with the usual precedence ('*' and '/' bind tighter
// than '+' and '-', all left-associative) over non-negative integer
// literals. Every division must be exact: a zero divisor yields
// ErrDivisionByZero and a remainder yields ErrNonIntegral.
func Evaluate(expr string) (*big.Int, error) {
	p := parser{src: expr}
	v, err := p.sum()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrSyntax, p.src[p.pos], p.pos, expr)
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

// sum := product (('+'|'-') product)*
func (p *parser) sum() (*big.Int, error) {
	acc, err := p.product()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '+' && op != '-') {
			return acc, nil
		}
		p.pos++
		rhs, err := p.product()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			acc.Add(acc, rhs)
		} else {
			acc.Sub(acc, rhs)
		}
	}
}

// product := number (('*'|'/') number)*
func (p *parser) product() (*big.Int, error) {
	acc, err := p.number()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.peek()
		if !ok || (op != '*' && op != '/') {
			return acc, nil
		}
		p.pos++
		rhs, err := p.number()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			acc.Mul(acc, rhs)
			continue
		}
		if rhs.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		var rem big.Int
		acc.QuoRem(acc, rhs, &rem)
		if rem.Sign() != 0 {
			return nil, ErrNonIntegral
		}
	}
}

func (p *parser) number() (*big.Int, error) {
	start := p.pos
	for p.pos < len(p.src) && IsDigit(p.src[p.pos]) {
		p.pos++
	}
	if start == p.pos {
		if p.pos >= len(p.src) {
			return nil, fmt.Errorf("%w: missing operand at end of %q", ErrSyntax, p.src)
		}
		return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrSyntax, p.src[p.pos], p.pos, p.src)
	}
	v, ok := new(big.Int).SetString(p.src[start:p.pos], 10)
	if !ok {
		return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, p.src[start:p.pos])
	}
	return v, nil
}
