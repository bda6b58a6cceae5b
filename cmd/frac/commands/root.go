package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aatomu/frac"
	"github.com/aatomu/frac/internal/render"
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with its own Config.
func NewRootCmd() *cobra.Command {
	cfg := &Config{}

	root := &cobra.Command{
		Use:          "frac",
		Short:        "Fraction arithmetic and formatting",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.load(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&cfg.Format, "format", "f", string(render.Proper),
		fmt.Sprintf("output format (%s)", strings.Join(render.Formats(), "|")))
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "trace operands and results to stderr")

	root.AddCommand(
		parseCmd(cfg),
		binaryCmd(cfg, "add", "Print a + b", frac.Add),
		binaryCmd(cfg, "sub", "Print b - a", frac.Sub),
		binaryCmd(cfg, "mul", "Print a * b", frac.Mul),
		binaryCmd(cfg, "div", "Print a / b", frac.Div),
		unaryCmd(cfg, "invert", "Swap numerator and denominator", frac.Invert),
		unaryCmd(cfg, "negate", "Flip the sign of the numerator", frac.Negate),
		unaryCmd(cfg, "reduce", "Divide out the greatest common divisor", frac.Reduce),
		gcdCmd(cfg),
	)
	return root
}
