package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func embeddingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "embeddings",
		Short: "Summarize stored document embeddings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			embedded, err := client.Reader.Embeddings(ctx)
			if err != nil {
				return err
			}
			if len(embedded) == 0 {
				fmt.Println("No embedded documents found.")
				return nil
			}

			dims := map[int]int{}
			for _, doc := range embedded {
				dims[doc.Embedding().Dim()]++
			}

			fmt.Printf("%d embedded documents\n", len(embedded))
			keys := make([]int, 0, len(dims))
			for dim := range dims {
				keys = append(keys, dim)
			}
			sort.Ints(keys)
			for _, dim := range keys {
				fmt.Printf("  %d dimensions: %d documents\n", dim, dims[dim])
			}
			return nil
		},
	}
}
