package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/scrapegraph-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := tools.NewRegistry()
		tools.RegisterScrapeGraph(reg, newClient())

		for _, t := range reg.All() {
			fmt.Printf("%s\n    %s\n", t.Def.Name, t.Def.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
