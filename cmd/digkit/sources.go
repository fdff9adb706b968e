package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func sourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List crawled sources, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			sources, err := client.Reader.Sources(ctx)
			if err != nil {
				return err
			}
			if len(sources) == 0 {
				fmt.Println("No sources found.")
				return nil
			}

			table := newTable(os.Stdout, "Created", "Status", "Title", "URL")
			for _, s := range sources {
				created := ""
				if !s.CreatedAt().IsZero() {
					created = s.CreatedAt().Format("2006-01-02 15:04")
				}
				if err := table.Append([]string{
					created,
					string(s.CrawlStatus()),
					truncate(s.DisplayName(), 48),
					truncate(s.URL(), 64),
				}); err != nil {
					return fmt.Errorf("render sources: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render sources: %w", err)
			}
			return nil
		},
	}
}
