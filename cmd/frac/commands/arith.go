package commands

import (
	"github.com/spf13/cobra"

	"github.com/aatomu/frac"
)

func binaryCmd(cfg *Config, use, short string, op func(a, b frac.Frac) frac.Frac) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cfg.parse(args[0])
			if err != nil {
				return err
			}
			b, err := cfg.parse(args[1])
			if err != nil {
				return err
			}
			res := op(a, b)
			cfg.log.Printf("%s %v %v = %v", use, a, b, res)
			return cfg.print(cmd, res)
		},
	}
}

func unaryCmd(cfg *Config, use, short string, op func(frac.Frac) frac.Frac) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <fraction>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				f, err := cfg.parse(arg)
				if err != nil {
					return err
				}
				res := op(f)
				cfg.log.Printf("%s %v = %v", use, f, res)
				if err := cfg.print(cmd, res); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
