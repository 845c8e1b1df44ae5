package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/scrapegraph-mcp/pkg/scrapegraph"
)

var (
	crawlMode       string
	crawlPrompt     string
	crawlDepth      int
	crawlMaxPages   int
	crawlSameDomain bool
	crawlWait       bool
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <url>",
	Short: "Start an asynchronous multi-page crawl",
	Long:  "Starts a crawl and prints the acknowledgement. With --wait, polls until the crawl completes and prints the final results instead.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireClient()
		if err != nil {
			return err
		}

		req := scrapegraph.CrawlRequest{
			URL:            args[0],
			ExtractionMode: crawlMode,
			Prompt:         crawlPrompt,
		}
		if cmd.Flags().Changed("depth") {
			req.Depth = &crawlDepth
		}
		if cmd.Flags().Changed("max-pages") {
			req.MaxPages = &crawlMaxPages
		}
		if cmd.Flags().Changed("same-domain") {
			req.SameDomainOnly = &crawlSameDomain
		}

		ack, err := client.Crawl(cmd.Context(), req)
		if err != nil {
			return err
		}

		if !crawlWait {
			return printJSON(ack)
		}

		id, err := scrapegraph.RequestID(ack)
		if err != nil {
			return err
		}
		zap.L().Info("crawl started, polling", zap.String("request_id", id))

		final, err := scrapegraph.PollCrawl(cmd.Context(), client, id,
			scrapegraph.WithPollInterval(time.Duration(cfg.Poll.IntervalSecs)*time.Second),
			scrapegraph.WithPollCap(time.Duration(cfg.Poll.CapSecs)*time.Second),
			scrapegraph.WithPollTimeout(time.Duration(cfg.Poll.TimeoutSecs)*time.Second),
		)
		if err != nil {
			return err
		}

		return printJSON(final)
	},
}

var crawlStatusCmd = &cobra.Command{
	Use:   "crawl-status <request_id>",
	Short: "Fetch the status and results of a crawl",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := requireClient()
		if err != nil {
			return err
		}

		raw, err := client.GetCrawlStatus(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return printJSON(raw)
	},
}

func init() {
	crawlCmd.Flags().StringVar(&crawlMode, "mode", scrapegraph.ExtractionModeMarkdown, `extraction mode: "ai" or "markdown"`)
	crawlCmd.Flags().StringVar(&crawlPrompt, "prompt", "", `extraction instructions (required with --mode ai)`)
	crawlCmd.Flags().IntVar(&crawlDepth, "depth", 0, "maximum link depth to follow")
	crawlCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 0, "maximum number of pages to crawl")
	crawlCmd.Flags().BoolVar(&crawlSameDomain, "same-domain", false, "restrict the crawl to the starting domain")
	crawlCmd.Flags().BoolVar(&crawlWait, "wait", false, "poll until the crawl completes")
	rootCmd.AddCommand(crawlCmd)
	rootCmd.AddCommand(crawlStatusCmd)
}
