package main

import (
	"log/slog"

	"github.com/devdigger/digkit/internal/mcp"
	"github.com/spf13/cobra"
)

func stdioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

Exposes search, get_code_examples, and stats tools so AI assistants
can read the crawled documentation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			logger := client.Logger()
			logger.Info("starting MCP server", slog.String("version", version))

			return mcp.NewServer(client.Reader, version, logger).ServeStdio()
		},
	}
}
