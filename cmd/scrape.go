package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/scrapegraph-mcp/pkg/scrapegraph"
)

var (
	scrapePrompt       string
	scrapeScrolls      int
	scrapeMarkdownOnly bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Extract structured data from a webpage using AI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scrapePrompt == "" {
			return eris.New("--prompt is required")
		}

		client, err := requireClient()
		if err != nil {
			return err
		}

		req := scrapegraph.SmartScraperRequest{
			UserPrompt: scrapePrompt,
			WebsiteURL: args[0],
		}
		if cmd.Flags().Changed("scrolls") {
			req.NumberOfScrolls = &scrapeScrolls
		}
		if cmd.Flags().Changed("markdown-only") {
			req.MarkdownOnly = &scrapeMarkdownOnly
		}

		raw, err := client.SmartScraper(cmd.Context(), req)
		if err != nil {
			return err
		}

		return printJSON(raw)
	},
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapePrompt, "prompt", "", "instructions for what data to extract (required)")
	scrapeCmd.Flags().IntVar(&scrapeScrolls, "scrolls", 0, "number of infinite scrolls before extracting")
	scrapeCmd.Flags().BoolVar(&scrapeMarkdownOnly, "markdown-only", false, "return raw markdown instead of AI-extracted data")
	rootCmd.AddCommand(scrapeCmd)
}
