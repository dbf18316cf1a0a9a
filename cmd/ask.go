package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dinesim/dinesim/internal/kb"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt>",
	Short: "Query the dining knowledge base",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if cfg.KnowledgeBaseID == "" {
			fmt.Fprintln(os.Stderr, "knowledge_base_id is not configured")
			os.Exit(1)
		}

		client, err := kb.NewClient(context.Background(), cfg.AWSRegion)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating knowledge base client: %v\n", err)
			os.Exit(1)
		}

		modelArn, _ := cmd.Flags().GetString("model-arn")
		ctx := context.Background()
		if cfg.QueryTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.QueryTimeout)
			defer cancel()
		}

		answer, err := client.Query(ctx, cfg.KnowledgeBaseID, strings.Join(args, " "), modelArn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error querying knowledge base: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(answer.Text)
		for _, citation := range answer.Citations {
			for _, ref := range citation.References {
				fmt.Printf("  [source] %s\n", ref)
			}
		}
	},
}

func init() {
	askCmd.Flags().String("model-arn", "", "Override the generation model ARN")
	rootCmd.AddCommand(askCmd)
}
