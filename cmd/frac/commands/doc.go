// Package commands defines the frac CLI.
//
// Commands
//
//   - parse    Parse and print fractions
//   - add      Print a + b
//   - sub      Print b - a (the library's argument order)
//   - mul      Print a * b
//   - div      Print a / b
//   - invert   Swap numerator and denominator
//   - negate   Flip the sign of the numerator
//   - reduce   Divide out the greatest common divisor
//   - gcd      Print the greatest common divisor of two integers
//
// Operands accept "n/d", "w n/d" (quoted) and decimals. Put operands that
// start with "-" after "--" so they are not read as flags.
//
// # Output
//
// Every result is printed with the persistent --format flag (default
// proper); see internal/render for the names. --verbose traces parsed
// operands and results to stderr.
package commands
