package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aatomu/frac"
)

func gcdCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "gcd <a> <b>",
		Short: "Print the greatest common divisor of two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("gcd: %w", err)
			}
			b, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("gcd: %w", err)
			}
			g := frac.GCD(a, b)
			cfg.log.Printf("gcd %d %d = %d", a, b, g)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g)
			return err
		},
	}
}
