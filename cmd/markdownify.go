package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/scrapegraph-mcp/pkg/scrapegraph"
)

var markdownifyCmd = &cobra.Command{
	Use:   "markdownify <url>",
	Short: "Convert a webpage into clean, formatted markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireClient()
		if err != nil {
			return err
		}

		raw, err := client.Markdownify(cmd.Context(), scrapegraph.MarkdownifyRequest{
			WebsiteURL: args[0],
		})
		if err != nil {
			return err
		}

		return printJSON(raw)
	},
}

func init() {
	rootCmd.AddCommand(markdownifyCmd)
}
