package cmd

import (
	"fmt"

	"serve-web/core/ports"

	"github.com/spf13/cobra"
)

// newPortCmd prints the port the server would pick right now.
func newPortCmd(flags *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "port",
		Short: "Print the first available port",
		Long:  `Scans from the preferred port like the server does and prints the first port that can be bound.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			port, err := ports.FindAvailablePort(cfg.Server.PreferredPort(), cfg.Server.PortAttempts())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), port)
			return nil
		},
	}
}
