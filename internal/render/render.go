package render

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/aatomu/frac"
)

// Format names one way of printing a fraction.
type Format string

const (
	Raw      Format = "raw"      // "n/d" as stored
	Improper Format = "improper" // reduced "n/d"
	Proper   Format = "proper"   // reduced mixed number
	NoReduce Format = "noreduce" // mixed number, unreduced
	Force    Format = "force"    // mixed number, remainder always shown
	Float    Format = "float"
	Int      Format = "int"  // floor
	Ceil     Format = "ceil" // ceiling
)

var ErrUnknownFormat = errors.New("unknown format")

var renderers = map[Format]func(frac.Frac) string{
	Raw:      frac.Frac.String,
	Improper: frac.Frac.Improper,
	Proper:   frac.Frac.Proper,
	NoReduce: frac.Frac.ProperNoReduce,
	Force:    frac.Frac.ProperForceDenominator,
	Float: func(f frac.Frac) string {
		return strconv.FormatFloat(f.Float(), 'g', -1, 64)
	},
	Int: func(f frac.Frac) string {
		return strconv.FormatInt(f.Int(), 10)
	},
	Ceil: func(f frac.Frac) string {
		return strconv.FormatInt(f.Ceil(), 10)
	},
}

// Formats returns every known format name, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for _, f := range slices.Sorted(maps.Keys(renderers)) {
		names = append(names, string(f))
	}
	return names
}

func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if _, ok := renderers[f]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Render prints f in the given format.
func Render(f frac.Frac, format Format) (string, error) {
	fn, ok := renderers[format]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return fn(f), nil
}
