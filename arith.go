package frac

import "golang.org/x/exp/constraints"

// Results of the arithmetic functions are never reduced; call Reduce when a
// canonical pair is needed.

// Invert swaps numerator and denominator. Inverting 0/d gives d/0.
func Invert(f Frac) Frac {
	return Frac{n: f.d, d: f.n}
}

func Negate(f Frac) Frac {
	return Frac{n: -f.n, d: f.d}
}

func cross(a, b Frac) int64 {
	return a.n * b.d
}

// Add returns a + b over the common denominator a.d*b.d.
func Add(a, b Frac) Frac {
	return Frac{
		n: cross(a, b) + cross(b, a),
		d: a.d * b.d,
	}
}

// Sub subtracts a from b, returning b - a. Note the argument order.
func Sub(a, b Frac) Frac {
	return Add(Negate(a), b)
}

func Mul(a, b Frac) Frac {
	return Frac{
		n: a.n * b.n,
		d: a.d * b.d,
	}
}

// Div returns a / b.
func Div(a, b Frac) Frac {
	return Mul(a, Invert(b))
}

// GCD is Euclid's algorithm. Signs are not normalized, so negative inputs can
// give a negative divisor.
func GCD[T constraints.Signed](a, b T) T {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

// Reduce divides both terms by their GCD. A zero numerator always reduces to
// 0/1.
func Reduce(f Frac) Frac {
	d := f.d
	if f.n == 0 {
		d = 1
	}
	g := GCD(f.n, d)
	return Frac{
		n: f.n / g,
		d: d / g,
	}
}

// ProperRemainder returns the part of f below one whole, over the same
// denominator. A zero denominator gives 0/0.
func ProperRemainder(f Frac) Frac {
	if f.d == 0 {
		return Frac{}
	}
	return Frac{n: f.n % f.d, d: f.d}
}
