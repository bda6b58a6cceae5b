package commands

import "github.com/spf13/cobra"

func parseCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <fraction>...",
		Short: "Parse and print fractions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				f, err := cfg.parse(arg)
				if err != nil {
					return err
				}
				if err := cfg.print(cmd, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
