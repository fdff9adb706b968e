package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/devdigger/digkit/domain/catalog"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show row counts for the crawler database tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			stats, err := client.Reader.Stats(ctx)
			if err != nil {
				return err
			}

			table := newTable(os.Stdout, "Table", "Rows")
			for _, name := range catalog.StatTables() {
				if err := table.Append([]string{name, strconv.FormatInt(stats.Count(name), 10)}); err != nil {
					return fmt.Errorf("render stats: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render stats: %w", err)
			}

			if stats.Empty() {
				fmt.Println("The database is empty. Run the DevDigger app to crawl some documentation.")
			}
			return nil
		},
	}
}
