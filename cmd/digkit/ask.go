package main

import (
	"errors"
	"fmt"

	"github.com/devdigger/digkit"
	"github.com/devdigger/digkit/application/service"
	"github.com/spf13/cobra"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from the crawled documentation",
		Long: `Search the crawled documentation for chunks matching the question,
stuff them into a prompt, and ask the configured chat endpoint to
answer from them.

Requires a configured chat endpoint:
  CHAT_ENDPOINT_API_KEY     API key (required)
  CHAT_ENDPOINT_BASE_URL    Base URL for OpenAI-compatible endpoints
  CHAT_ENDPOINT_MODEL       Model identifier (default: gpt-4o-mini)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			question := args[0]

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cfg.ChatEndpoint().Configured() {
				return errors.New("no chat endpoint configured: set CHAT_ENDPOINT_API_KEY")
			}

			client, _, err := openClient(ctx, cmd,
				digkit.WithChatEndpoint(cfg.ChatEndpoint()))
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			assistant, err := client.Assistant()
			if err != nil {
				return err
			}

			answer, err := assistant.Ask(ctx, question)
			if err != nil {
				if errors.Is(err, service.ErrNoContext) {
					fmt.Printf("No documents match %q; nothing to answer from.\n", question)
					return nil
				}
				return err
			}

			fmt.Println(answer.Text())
			if len(answer.Sources()) > 0 {
				fmt.Println("\nSources:")
				seen := map[string]bool{}
				for _, src := range answer.Sources() {
					if seen[src.URL()] {
						continue
					}
					seen[src.URL()] = true
					fmt.Printf("  - %s\n", src.URL())
				}
			}
			return nil
		},
	}
}
