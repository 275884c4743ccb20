package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/railzwaylabs/envelope/internal/cache"
	"github.com/railzwaylabs/envelope/internal/catalog"
	"github.com/railzwaylabs/envelope/internal/clock"
	"github.com/railzwaylabs/envelope/internal/config"
	"github.com/railzwaylabs/envelope/internal/migration"
	"github.com/railzwaylabs/envelope/internal/observability"
	"github.com/railzwaylabs/envelope/internal/redis"
	"github.com/railzwaylabs/envelope/internal/server"
	"github.com/railzwaylabs/envelope/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "envelope",
		Short:         "Envelope catalog API",
		Version:       readVersionFromEnv(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default: search ./config.yaml, $HOME/.envelope, /etc/envelope)")

	root.AddCommand(
		newServeCmd(&configPath),
		newMigrateCmd(&configPath),
		newConfigCmd(&configPath),
		newVersionCmd(),
	)
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			runServe(*configPath, !skipMigrate)
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on startup")
	return cmd
}

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(*configPath)
		},
	}
}

func newConfigCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Validate configuration and print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithPath(*configPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "app=%s env=%s http=%s db=%s cache=%t tracing=%t\n",
				cfg.AppName, cfg.Environment, cfg.HTTP.Addr, cfg.Database.Driver, cfg.Cache.Enabled, cfg.Tracing.Enabled)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), readVersionFromEnv())
		},
	}
}

func runMigrate(configPath string) error {
	app := fx.New(
		config.WithFile(configPath),
		observability.Module,
		db.Module,
		migration.Module,
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("migrate failed: %w", err)
	}
	_ = app.Stop(context.Background())
	return nil
}

func runServe(configPath string, migrate bool) {
	opts := []fx.Option{
		config.WithFile(configPath),
		observability.Module,
		fx.Provide(registerSnowflake),
		db.Module,
		clock.Module,
		redis.Module,
		cache.Module,
		catalog.Module,
	}
	// Hooks start in registration order, so the schema exists before the
	// listener accepts requests.
	if migrate {
		opts = append(opts, migration.Module)
	}
	opts = append(opts, server.Module)
	fx.New(opts...).Run()
}

func registerSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func readVersionFromEnv() string {
	if v := strings.TrimSpace(os.Getenv("APP_VERSION")); v != "" {
		return v
	}
	return "dev"
}
