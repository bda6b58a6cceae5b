// Package frac provides an immutable fraction value built on int64.
//
// A [Frac] is a plain numerator/denominator pair. Nothing is validated or
// reduced on construction; reduction happens when a caller asks for it
// ([Reduce], [Frac.Improper], [Frac.Proper]) and a zero denominator only
// matters when the value is converted to a number, where [Frac.Float],
// [Frac.Int] and [Frac.Ceil] return 0.
//
// # Arithmetic
//
//   - [Add], [Mul], [Div], [Negate], [Invert] return new, unreduced values
//   - [Sub] returns its second argument minus its first
//   - [GCD] and [Reduce] normalize a pair; [ProperRemainder] extracts the
//     part below one whole
//
// Overflow is not detected.
//
// # Formatting
//
//	f := frac.New(7, 2)
//	f.String()                 // "7/2"
//	f.Proper()                 // "3 1/2"
//	frac.New(6, 2).Improper()  // "3/1"
//
// # Parsing
//
// [FromString] reads decimals ("3.25" is 325/100) and [Parse] also reads
// "n/d" and mixed "w n/d" forms. Both report failures as [*FormatError].
package frac
