package cmd

import (
	"fmt"
	"os"

	"serve-web/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flagValues holds the command-line overrides of one invocation.
type flagValues struct {
	port      string
	root      string
	maxTries  int
	noBrowser bool
}

// NewRootCmd builds the command tree. Without a subcommand it serves the web root.
func NewRootCmd() *cobra.Command {
	flags := &flagValues{}

	rootCmd := &cobra.Command{
		Use:   "serve-web",
		Short: "Serve a local web directory",
		Long: `serve-web serves the web directory next to the executable over HTTP.
It starts at the preferred port (PORT, default 8000), moves up to the next
free port when it is busy, and opens the landing page in your browser.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.port, "port", "p", "", "preferred port to start scanning from (overrides PORT)")
	pf.StringVarP(&flags.root, "root", "r", "", "directory to serve (default: web next to the executable)")
	pf.IntVar(&flags.maxTries, "max-tries", 0, "number of consecutive ports to probe")
	pf.BoolVar(&flags.noBrowser, "no-browser", false, "do not open the landing page in a browser")

	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newPortCmd(flags))

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "info",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
