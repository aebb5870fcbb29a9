package model

import (
	"fmt"
	"strconv"
)

// Fraction is an exact rational exponent. Exponents drive model identity, so
// they are kept exact instead of as floats; 1/3 and 0.3333 are different
// models.
type Fraction struct {
	num int64
	den int64
}

// NewFraction creates a normalized fraction. The denominator must not be
// zero; the sign is carried by the numerator.
func NewFraction(num, den int64) Fraction {
	if den == 0 {
		panic("model: fraction denominator must not be zero")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Fraction{num: num, den: den}
}

// NewIntFraction creates a fraction with denominator 1.
func NewIntFraction(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// Numerator returns the normalized numerator.
func (f Fraction) Numerator() int64 { return f.num }

// Denominator returns the normalized denominator, always positive.
func (f Fraction) Denominator() int64 {
	if f.den == 0 {
		// zero value of Fraction behaves as 0/1
		return 1
	}
	return f.den
}

// Value returns the fraction as a float64.
func (f Fraction) Value() float64 {
	return float64(f.num) / float64(f.Denominator())
}

// IsZero reports whether the fraction equals zero.
func (f Fraction) IsZero() bool { return f.num == 0 }

// String renders integral fractions without a denominator: "2", "-1", "3/4".
func (f Fraction) String() string {
	if f.Denominator() == 1 {
		return strconv.FormatInt(f.num, 10)
	}
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
