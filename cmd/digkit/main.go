// Package main is the entry point for the digkit CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/devdigger/digkit"
	"github.com/devdigger/digkit/internal/config"
	"github.com/devdigger/digkit/internal/log"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digkit",
		Short: "Read-only toolkit for the DevDigger crawler database",
		Long: `digkit reads the SQLite database produced by the DevDigger crawler:
sources, document chunks, code examples, and their embeddings. The
database is opened read-only; digkit never writes to it.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("db", "",
		"Path to the crawler database (default: platform application-support location)")
	cmd.PersistentFlags().String("env-file", "",
		"Path to .env file (default: .env in current directory)")

	cmd.AddCommand(statsCmd())
	cmd.AddCommand(sourcesCmd())
	cmd.AddCommand(searchCmd())
	cmd.AddCommand(documentsCmd())
	cmd.AddCommand(examplesCmd())
	cmd.AddCommand(embeddingsCmd())
	cmd.AddCommand(exportCmd())
	cmd.AddCommand(askCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(stdioCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig resolves configuration from the .env file, environment
// variables, and the --db flag.
func loadConfig(cmd *cobra.Command) (config.AppConfig, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	dbPath, _ := cmd.Flags().GetString("db")

	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg.Apply(config.WithDBPath(dbPath)), nil
}

// openClient loads configuration and opens the digkit client. A missing
// database file surfaces as a user-facing error; cobra exits 1.
func openClient(ctx context.Context, cmd *cobra.Command, extra ...digkit.Option) (*digkit.Client, config.AppConfig, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.AppConfig{}, err
	}

	logger := log.NewLogger(cfg)
	// Packages logging through the slog default (e.g. the GORM adapter)
	// share the same handler.
	logger.SetDefault()

	opts := append([]digkit.Option{
		digkit.WithDatabasePath(cfg.DBPath()),
		digkit.WithLogger(logger.Slog()),
		digkit.WithSearchLimit(cfg.SearchLimit()),
	}, extra...)

	client, err := digkit.New(ctx, opts...)
	if err != nil {
		if errors.Is(err, digkit.ErrDatabaseNotFound) {
			return nil, config.AppConfig{}, fmt.Errorf(
				"database not found at %s\nRun the DevDigger app to crawl some documentation first, or point --db at an existing database",
				cfg.DBPath())
		}
		return nil, config.AppConfig{}, err
	}
	return client, cfg, nil
}
