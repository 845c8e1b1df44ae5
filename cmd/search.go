package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/scrapegraph-mcp/pkg/scrapegraph"
)

var (
	searchResults int
	searchScrolls int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Perform an AI-powered web search with structured results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireClient()
		if err != nil {
			return err
		}

		req := scrapegraph.SearchScraperRequest{
			UserPrompt: strings.Join(args, " "),
		}
		if cmd.Flags().Changed("results") {
			req.NumResults = &searchResults
		}
		if cmd.Flags().Changed("scrolls") {
			req.NumberOfScrolls = &searchScrolls
		}

		raw, err := client.SearchScraper(cmd.Context(), req)
		if err != nil {
			return err
		}

		return printJSON(raw)
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchResults, "results", 0, "number of websites to consider")
	searchCmd.Flags().IntVar(&searchScrolls, "scrolls", 0, "number of infinite scrolls on each website")
	rootCmd.AddCommand(searchCmd)
}
