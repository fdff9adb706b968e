package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func documentsCmd() *cobra.Command {
	var sourceID string

	cmd := &cobra.Command{
		Use:   "documents",
		Short: "List document chunks",
		Long: `List document chunks. With --source the result is limited to one
source and ordered by chunk index.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			documents, err := client.Reader.Documents(ctx, sourceID)
			if err != nil {
				return err
			}
			if len(documents) == 0 {
				fmt.Println("No documents found.")
				return nil
			}

			table := newTable(os.Stdout, "ID", "Source", "Chunk", "Embedded", "Content")
			for _, d := range documents {
				embedded := "no"
				if d.HasEmbedding() {
					embedded = "yes"
				}
				if err := table.Append([]string{
					d.ID(),
					d.SourceID(),
					strconv.Itoa(d.ChunkIndex()),
					embedded,
					truncate(d.Content(), 60),
				}); err != nil {
					return fmt.Errorf("render documents: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render documents: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceID, "source", "", "Limit to one source ID, ordered by chunk index")
	return cmd
}
