package frac

import (
	"math"
	"math/big"
)

// Frac is an immutable numerator/denominator pair.
//
// Nothing is validated: a zero denominator and an unreduced pair are both
// valid values. The zero value is 0/0.
type Frac struct {
	n int64
	d int64
}

// New returns n/d as given, without reduction or validation. The zero value
// Frac{} is 0/0; use New(0, 1) for zero.
func New(n, d int64) Frac {
	return Frac{n: n, d: d}
}

// Int returns the whole number n/1.
func Int(n int64) Frac {
	return Frac{n: n, d: 1}
}

// FromFloat approximates x on a fixed 1e10 scale and reduces the result.
func FromFloat(x float64) Frac {
	return Reduce(Frac{
		n: int64(math.Round(x * 1e10)),
		d: 1e10,
	})
}

func (f Frac) Numerator() int64 { return f.n }

func (f Frac) Denominator() int64 { return f.d }

func (f Frac) quotient() float64 {
	return float64(f.n) / float64(f.d)
}

// Float returns n/d, or 0 when the denominator is 0.
func (f Frac) Float() float64 {
	if f.d == 0 {
		return 0
	}
	return f.quotient()
}

// Int returns the floor of Float.
func (f Frac) Int() int64 {
	if f.d == 0 {
		return 0
	}
	return int64(math.Floor(f.quotient()))
}

// Ceil returns the ceiling of Float.
func (f Frac) Ceil() int64 {
	if f.d == 0 {
		return 0
	}
	return int64(math.Ceil(f.quotient()))
}

// Rat returns an exact copy as a big.Rat. It reports false for a zero
// denominator, which big.Rat cannot hold.
func (f Frac) Rat() (*big.Rat, bool) {
	if f.d == 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac64(f.n, f.d), true
}

// Equal reports whether a and b have the same value. 1/2 and 2/4 are equal.
func Equal(a, b Frac) bool {
	if a.d == 0 || b.d == 0 {
		return a.d == 0 && b.d == 0 && a.n == b.n
	}
	return cross(a, b) == cross(b, a)
}

// Compare orders a and b by Float, treating values closer than 1e-6 as equal.
func Compare(a, b Frac) int {
	const threshold = 1e-6

	x, y := a.Float(), b.Float()
	if math.Abs(x-y) < threshold {
		return 0
	}
	if x < y {
		return -1
	}
	return 1
}
