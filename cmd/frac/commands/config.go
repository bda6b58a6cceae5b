package commands

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/aatomu/frac"
	"github.com/aatomu/frac/internal/render"
)

// Config holds the values of the persistent flags.
type Config struct {
	Format  string // output format name, see render.Formats
	Verbose bool   // trace to stderr

	format render.Format
	log    *log.Logger
}

// load validates the flags and prepares the logger for cmd.
func (c *Config) load(cmd *cobra.Command) error {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	c.format = format

	out := io.Discard
	if c.Verbose {
		out = cmd.ErrOrStderr()
	}
	c.log = log.New(out, "frac: ", 0)
	return nil
}

func (c *Config) parse(s string) (frac.Frac, error) {
	f, err := frac.Parse(s)
	if err != nil {
		return frac.Frac{}, err
	}
	c.log.Printf("operand %q = %v", s, f)
	return f, nil
}

func (c *Config) print(cmd *cobra.Command, f frac.Frac) error {
	s, err := render.Render(f, c.format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
