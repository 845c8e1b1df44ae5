package tools

import (
	"math"

	"github.com/rotisserie/eris"
)

// Argument extraction helpers. MCP arguments arrive as a decoded JSON object,
// so every number is a float64 regardless of the declared schema type.

// stringArg returns a required string argument.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", eris.Errorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", eris.Errorf("%s must be a string", key)
	}
	return s, nil
}

// optStringArg returns an optional string argument, or "" when absent.
func optStringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", eris.Errorf("%s must be a string", key)
	}
	return s, nil
}

// optIntArg returns an optional integer argument, or nil when absent.
func optIntArg(args map[string]any, key string) (*int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return nil, eris.Errorf("%s must be an integer", key)
		}
		i := int(n)
		return &i, nil
	case int:
		i := n
		return &i, nil
	default:
		return nil, eris.Errorf("%s must be an integer", key)
	}
}

// optBoolArg returns an optional boolean argument, or nil when absent.
func optBoolArg(args map[string]any, key string) (*bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, eris.Errorf("%s must be a boolean", key)
	}
	return &b, nil
}
