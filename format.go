package frac

import "strconv"

// String formats the pair verbatim as "n/d".
func (f Frac) String() string {
	return strconv.FormatInt(f.n, 10) + "/" + strconv.FormatInt(f.d, 10)
}

// Improper formats the reduced pair as "n/d".
func (f Frac) Improper() string {
	return Reduce(f).String()
}

// Proper formats the reduced value as a whole number ("3"), a mixed number
// ("3 1/2") or a plain fraction ("1/2").
func (f Frac) Proper() string {
	return Reduce(f).ProperNoReduce()
}

// ProperNoReduce is Proper without the reduction step, so 6/2 gives "3 "
// with an empty remainder.
func (f Frac) ProperNoReduce() string {
	if f.d == 1 {
		return strconv.FormatInt(f.n, 10)
	}
	if f.n > f.d {
		rem := ProperRemainder(f)
		tail := ""
		if rem.n != 0 {
			tail = rem.String()
		}
		return strconv.FormatInt(f.Int(), 10) + " " + tail
	}
	return f.String()
}

// ProperForceDenominator is like ProperNoReduce but always renders the
// remainder, including "n 0/1" for nonzero whole numbers.
func (f Frac) ProperForceDenominator() string {
	if f.d == 1 && f.n != 0 {
		return strconv.FormatInt(f.n, 10) + " 0/1"
	}
	if f.n > f.d {
		return strconv.FormatInt(f.Int(), 10) + " " + ProperRemainder(f).String()
	}
	return f.String()
}
