package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"serve-web/core/browser"
	"serve-web/core/config"
	"serve-web/core/loader"
	"serve-web/core/logger"
	"serve-web/core/middleware/accesslog"
	"serve-web/core/middleware/rayid"
	"serve-web/core/server"
	"serve-web/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newServeCmd is the explicit form of running serve-web without a subcommand.
func newServeCmd(flags *flagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the web directory",
		Long:  `Starts the HTTP server on the first available port and serves the web directory until interrupted.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

func runServe(cmd *cobra.Command, flags *flagValues) error {
	// 1. Load Configuration
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Validate the web root before touching any socket
	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return err
	}

	app, err := newApp(cfg, root, logg)
	if err != nil {
		return err
	}

	// 4. Serve until interrupted
	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, root, app, logg, browser.NewSystem()).Run(ctx)
}

// newApp builds the Fiber app with middleware and features registered.
func newApp(cfg *config.Config, root string, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "serve-web",
		DisableStartupMessage: true, // We log our own startup message
	})

	// Access logs stay silent unless enabled
	if cfg.Log.Access {
		app.Use(rayid.New())
	}
	app.Use(accesslog.New(logger.Requests(&cfg.Log, logg)))

	mgr := loader.NewManager(logg)
	mgr.Register(static.NewFeature(root, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
