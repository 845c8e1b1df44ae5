package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTool(name string) Tool {
	return Tool{
		Def: mcp.NewTool(name, mcp.WithDescription("fake")),
		Handle: func(ctx context.Context, args map[string]any) Result {
			return OK(json.RawMessage(`{"tool":"` + name + `"}`))
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	reg.Register(fakeTool("alpha"))
	reg.Register(fakeTool("beta"))

	tool, err := reg.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", tool.Def.Name)

	_, err = reg.Get("gamma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "gamma"`)
}

func TestRegistry_OrderPreserved(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	reg.Register(fakeTool("c"))
	reg.Register(fakeTool("a"))
	reg.Register(fakeTool("b"))

	assert.Equal(t, []string{"c", "a", "b"}, reg.Names())

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Def.Name)
	assert.Equal(t, "b", all[2].Def.Name)
}

func TestRegistry_Dispatch(t *testing.T) {
	t.Parallel()
	reg := NewRegistry()
	reg.Register(fakeTool("alpha"))

	res := reg.Dispatch(context.Background(), "alpha", nil)
	assert.False(t, res.IsError())

	res = reg.Dispatch(context.Background(), "missing", nil)
	assert.True(t, res.IsError())
	assert.Contains(t, res.ErrMessage(), `unknown tool "missing"`)
}
