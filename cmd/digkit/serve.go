package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devdigger/digkit/infrastructure/api"
	v1 "github.com/devdigger/digkit/infrastructure/api/v1"
	"github.com/devdigger/digkit/internal/config"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server exposing read-only JSON endpoints.

Endpoints:
  GET /health
  GET /api/v1/stats
  GET /api/v1/sources
  GET /api/v1/search?q=...&limit=N
  GET /api/v1/documents?source=ID
  GET /api/v1/examples?language=L

Environment variables:
  DB_PATH       Crawler database path (default: platform app-support location)
  HOST          Server host to bind to (default: 0.0.0.0)
  PORT          Server port to listen on (default: 8080)
  LOG_LEVEL     Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT    Log format: pretty, json (default: pretty)
  SEARCH_LIMIT  Default search result limit (default: 10)`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, host, port)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")
	return cmd
}

func runServe(cmd *cobra.Command, host string, port int) error {
	ctx := cmd.Context()

	client, cfg, err := openClient(ctx, cmd)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	cfg = cfg.Apply(config.WithHost(host), config.WithPort(port))
	logger := client.Logger()

	server := api.NewServer(cfg.Addr(), logger)
	server.Router().Mount("/api/v1", v1.NewRouter(client.Reader, logger).Routes())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
