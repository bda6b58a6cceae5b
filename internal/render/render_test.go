package render_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/aatomu/frac"
	"github.com/aatomu/frac/internal/render"
)

func TestRender(t *testing.T) {
	f := frac.New(14, 4)
	tests := []struct {
		format render.Format
		want   string
	}{
		{render.Raw, "14/4"},
		{render.Improper, "7/2"},
		{render.Proper, "3 1/2"},
		{render.NoReduce, "3 2/4"},
		{render.Force, "3 2/4"},
		{render.Float, "3.5"},
		{render.Int, "3"},
		{render.Ceil, "4"},
	}
	for _, tt := range tests {
		got, err := render.Render(f, tt.format)
		if err != nil {
			t.Fatalf("Render(%s): %v", tt.format, err)
		}
		if got != tt.want {
			t.Errorf("Render(%s) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestRender_Unknown(t *testing.T) {
	if _, err := render.Render(frac.New(1, 2), "hex"); !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("got %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range render.Formats() {
		f, err := render.ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", name, err)
		}
		if string(f) != name {
			t.Fatalf("got %q, want %q", f, name)
		}
	}
	if _, err := render.ParseFormat("PROPER"); !errors.Is(err, render.ErrUnknownFormat) {
		t.Fatalf("got %v, want ErrUnknownFormat", err)
	}
}

func TestFormats_Sorted(t *testing.T) {
	names := render.Formats()
	if len(names) != 8 {
		t.Fatalf("got %d formats, want 8", len(names))
	}
	if !slices.IsSorted(names) {
		t.Fatalf("formats not sorted: %v", names)
	}
}
