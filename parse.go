package frac

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMultipleDecimalPoints = errors.New("multiple decimal points")
	ErrSyntax                = errors.New("invalid syntax")
)

// FormatError reports a string that could not be turned into a Frac.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("frac: invalid string %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// FromString parses a decimal such as "3", "3." or "3.25".
//
// The result is not reduced: "1.5" gives 15/10. The whole and fractional
// parts are summed with Add, so the sign of the whole part does not carry
// into the fraction ("-3.5" is -30/10 + 5/10).
func FromString(s string) (Frac, error) {
	split := strings.Split(s, ".")
	for i := range split {
		split[i] = strings.TrimSpace(split[i])
	}
	if len(split) > 2 {
		return Frac{}, &FormatError{Input: s, Err: ErrMultipleDecimalPoints}
	}

	if len(split) == 1 || split[1] == "" {
		whole, err := parseSegment(split[0])
		if err != nil {
			return Frac{}, &FormatError{Input: s, Err: err}
		}
		return Int(whole), nil
	}

	var whole int64
	if split[0] != "" {
		var err error
		if whole, err = parseSegment(split[0]); err != nil {
			return Frac{}, &FormatError{Input: s, Err: err}
		}
	}

	digits := split[1]
	if digits[0] == '+' || digits[0] == '-' {
		return Frac{}, &FormatError{Input: s, Err: ErrSyntax}
	}
	n, err := parseSegment(digits)
	if err != nil {
		return Frac{}, &FormatError{Input: s, Err: err}
	}
	d, err := parseSegment("1" + strings.Repeat("0", len(digits)))
	if err != nil {
		return Frac{}, &FormatError{Input: s, Err: err}
	}
	return Add(Int(whole), New(n, d)), nil
}

// Parse accepts "n/d", a mixed number "w n/d", or anything FromString
// accepts. The sign of w applies to the whole mixed number, so "-1 1/2" is
// -3/2; the n/d of a mixed number must be unsigned with d > 0.
func Parse(s string) (Frac, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.Contains(trimmed, "/") {
		return FromString(s)
	}

	fields := strings.Fields(trimmed)
	switch len(fields) {
	case 1:
		f, err := parseRatio(fields[0])
		if err != nil {
			return Frac{}, &FormatError{Input: s, Err: err}
		}
		return f, nil
	case 2:
		whole, err := parseSegment(fields[0])
		if err != nil {
			return Frac{}, &FormatError{Input: s, Err: err}
		}
		part, err := parseRatio(fields[1])
		if err != nil {
			return Frac{}, &FormatError{Input: s, Err: err}
		}
		// The sign belongs to the whole number only.
		if strings.ContainsAny(fields[1], "+-") || part.d <= 0 {
			return Frac{}, &FormatError{Input: s, Err: ErrSyntax}
		}
		if strings.HasPrefix(fields[0], "-") {
			part = Negate(part)
		}
		return Add(Int(whole), part), nil
	default:
		return Frac{}, &FormatError{Input: s, Err: ErrSyntax}
	}
}

func parseRatio(s string) (Frac, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return Frac{}, ErrSyntax
	}
	n, err := parseSegment(num)
	if err != nil {
		return Frac{}, err
	}
	d, err := parseSegment(den)
	if err != nil {
		return Frac{}, err
	}
	return New(n, d), nil
}

func parseSegment(s string) (int64, error) {
	if s == "" {
		return 0, ErrSyntax
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return v, nil
}
