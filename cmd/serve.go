package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/scrapegraph-mcp/internal/tools"
)

var (
	serveTransport string
	servePort      int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := newClient()
		if client == nil {
			zap.L().Warn("no API key configured; tools will report an initialization error per call")
		}

		reg := tools.NewRegistry()
		tools.RegisterScrapeGraph(reg, client)

		srv := server.NewMCPServer("ScrapeGraph API MCP Server", version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		)
		for _, t := range reg.All() {
			srv.AddTool(t.Def, adaptTool(t))
		}

		switch serveTransport {
		case "stdio":
			zap.L().Info("starting MCP server on stdio", zap.Strings("tools", reg.Names()))
			stdio := server.NewStdioServer(srv)
			if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !eris.Is(err, context.Canceled) {
				return eris.Wrap(err, "stdio server")
			}
			return nil

		case "http":
			port := servePort
			if port == 0 {
				port = cfg.Server.Port
			}

			httpSrv := server.NewStreamableHTTPServer(srv)

			// Graceful shutdown
			go func() {
				<-ctx.Done()
				zap.L().Info("shutting down server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				httpSrv.Shutdown(shutdownCtx)
			}()

			zap.L().Info("starting MCP server on http", zap.Int("port", port), zap.Strings("tools", reg.Names()))
			if err := httpSrv.Start(fmt.Sprintf(":%d", port)); err != nil && !eris.Is(err, http.ErrServerClosed) {
				return eris.Wrap(err, "http server")
			}
			return nil

		default:
			return eris.Errorf("unknown transport %q (want \"stdio\" or \"http\")", serveTransport)
		}
	},
}

// adaptTool bridges a registry tool to the MCP server. The Result union is
// serialized as the tool's text content so callers see the documented
// {result fields} | {"error": ...} shape; IsError mirrors the error variant.
func adaptTool(t tools.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := uuid.NewString()
		start := time.Now()

		res := t.Handle(ctx, req.GetArguments())

		buf, err := json.Marshal(res)
		if err != nil {
			// Result marshaling is infallible for well-formed upstream JSON;
			// reaching this means the upstream body was mangled in transit.
			return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
		}

		zap.L().Info("tool call",
			zap.String("tool", t.Def.Name),
			zap.String("invocation_id", id),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("error", res.IsError()),
		)

		out := mcp.NewToolResultText(string(buf))
		out.IsError = res.IsError()
		return out, nil
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveTransport, "transport", "stdio", "MCP transport: stdio or http")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
