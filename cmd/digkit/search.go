package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Substring search over document chunks",
		Long: `Search document chunks whose content contains the query as a
case-sensitive substring. Results are joined with the owning source's
URL and title. This is plain substring matching, not ranked search.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			query := args[0]

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			hits, err := client.Reader.Search(ctx, query, limit)
			if err != nil {
				return err
			}
			if len(hits) == 0 {
				fmt.Printf("No documents contain %q.\n", query)
				return nil
			}

			for i, hit := range hits {
				title := hit.Title()
				if title == "" {
					title = hit.URL()
				}
				fmt.Printf("%d. %s\n   %s\n   %s\n\n",
					i+1,
					title,
					hit.URL(),
					truncate(hit.Document().Content(), 200),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (default: 10)")
	return cmd
}
