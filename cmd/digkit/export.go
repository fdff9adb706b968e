package main

import (
	"fmt"

	"github.com/devdigger/digkit/infrastructure/export"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export the database to a JSON or YAML snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			exportFormat, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			client, _, err := openClient(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			written, err := client.Reader.Export(ctx, args[0], exportFormat)
			if err != nil {
				return err
			}

			fmt.Printf("Exported to %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Snapshot format: json or yaml")
	return cmd
}
