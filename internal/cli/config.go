package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sessionFromContext(cmd.Context())
			if s == nil {
				return fmt.Errorf("no session")
			}
			return s.cfg.Write(cmd.OutOrStdout())
		},
	}
}
