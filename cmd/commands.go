package cmd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
)

// NewRootCommand builds the CLI. Running it without a subcommand serves.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	SetConfigDefaults(v)
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "orderflow",
		Short:         "Order lifecycle workflow service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	root.PersistentFlags().String("log-format", "", "log format: text or json (env LOG_FORMAT)")
	_ = v.BindPFlag("LOG_LEVEL", root.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("LOG_FORMAT", root.PersistentFlags().Lookup("log-format"))

	serve := newServeCommand(v)
	root.RunE = serve.RunE
	root.AddCommand(serve, newMigrateCommand(v), newVersionCommand())

	return root
}

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and start the HTTP and gRPC servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			slog.SetDefault(logger)

			return Serve(cmd.Context(), cfg, logger)
		},
	}
}

func newMigrateCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(v)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			logger := NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

			sqlDB, _, err := OpenDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = sqlDB.Close() }()

			schemaVersion, err := Migrate(cmd.Context(), sqlDB)
			if err != nil {
				return err
			}

			logger.InfoContext(cmd.Context(), "Database migrated", "version", schemaVersion)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "orderflow %s\n", version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", commit)
			_, _ = fmt.Fprintf(out, "  go: %s\n", runtime.Version())
		},
	}
}
