package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scrapegraph-mcp/internal/tools"
)

func callAdapted(t *testing.T, tool tools.Tool, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	handler := adaptTool(tool)

	req := mcp.CallToolRequest{}
	req.Params.Name = tool.Def.Name
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	return res
}

func textContent(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := mcp.AsTextContent(res.Content[0])
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestAdaptTool_Success(t *testing.T) {
	tool := tools.Tool{
		Def: mcp.NewTool("echo"),
		Handle: func(ctx context.Context, args map[string]any) tools.Result {
			return tools.OK(json.RawMessage(`{"result":"ok","request_id":"req-1"}`))
		},
	}

	res := callAdapted(t, tool, map[string]any{"x": 1})
	assert.False(t, res.IsError)
	assert.JSONEq(t, `{"result":"ok","request_id":"req-1"}`, textContent(t, res))
}

func TestAdaptTool_ErrorVariant(t *testing.T) {
	tool := tools.Tool{
		Def: mcp.NewTool("broken"),
		Handle: func(ctx context.Context, args map[string]any) tools.Result {
			return tools.Error("Error 401: bad key")
		},
	}

	res := callAdapted(t, tool, nil)
	assert.True(t, res.IsError)
	assert.JSONEq(t, `{"error":"Error 401: bad key"}`, textContent(t, res))
}

func TestAdaptTool_ArgumentsReachHandler(t *testing.T) {
	var got map[string]any
	tool := tools.Tool{
		Def: mcp.NewTool("capture"),
		Handle: func(ctx context.Context, args map[string]any) tools.Result {
			got = args
			return tools.OK(json.RawMessage(`{}`))
		},
	}

	callAdapted(t, tool, map[string]any{"website_url": "https://example.com"})
	assert.Equal(t, "https://example.com", got["website_url"])
}
