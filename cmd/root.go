package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/scrapegraph-mcp/internal/config"
	"github.com/sells-group/scrapegraph-mcp/pkg/scrapegraph"
)

const version = "1.0.0"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "scrapegraph-mcp",
	Short: "MCP server for the ScrapeGraphAI web scraping API",
	Long:  "Exposes ScrapeGraphAI operations (markdownify, smartscraper, searchscraper, smartcrawler) as MCP tools over stdio or HTTP, plus direct CLI subcommands for the same operations.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newClient returns a ScrapeGraphAI client, or nil when no API key is
// configured. The serve command tolerates nil (tools report the missing key
// per call); direct CLI commands go through requireClient instead.
func newClient() scrapegraph.Client {
	if cfg.API.Key == "" {
		return nil
	}
	return scrapegraph.NewClient(cfg.API.Key, scrapegraph.WithBaseURL(cfg.API.BaseURL))
}

func requireClient() (scrapegraph.Client, error) {
	c := newClient()
	if c == nil {
		return nil, eris.New("no API key configured: set SGAI_API_KEY or api.key in config.yaml")
	}
	return c, nil
}

// printJSON pretty-prints an upstream payload to stdout.
func printJSON(raw json.RawMessage) error {
	var obj any
	if err := json.Unmarshal(raw, &obj); err != nil {
		return eris.Wrap(err, "decode payload")
	}
	buf, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode payload")
	}
	fmt.Println(string(buf))
	return nil
}
