package cmd

import (
	"serve-web/core/config"

	"github.com/spf13/cobra"
)

// loadConfig loads the configuration from the working directory and applies
// any flags set on the command line.
func loadConfig(cmd *cobra.Command, fv *flagValues) (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Server.Port = fv.port
	}
	if flags.Changed("root") {
		cfg.Server.Root = fv.root
	}
	if flags.Changed("max-tries") {
		cfg.Server.MaxPortAttempts = fv.maxTries
	}
	if flags.Changed("no-browser") {
		cfg.Server.OpenBrowser = !fv.noBrowser
	}

	return cfg, nil
}
