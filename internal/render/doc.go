// Package render turns a frac.Frac into text using one of a fixed set of
// named output formats. It backs the --format flag of the frac CLI.
package render
