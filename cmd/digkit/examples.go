package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func examplesCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "List extracted code examples",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			examples, err := client.Reader.Examples(ctx, language)
			if err != nil {
				return err
			}
			if len(examples) == 0 {
				fmt.Println("No code examples found.")
				return nil
			}

			table := newTable(os.Stdout, "Language", "Description", "Code", "Source")
			for _, e := range examples {
				if err := table.Append([]string{
					e.Language(),
					truncate(e.Description(), 40),
					truncate(e.Code(), 60),
					truncate(e.SourceURL(), 48),
				}); err != nil {
					return fmt.Errorf("render code examples: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render code examples: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&language, "language", "", "Filter by language tag (e.g. go, python)")
	return cmd
}
