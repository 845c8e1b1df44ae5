package tools

import (
	"encoding/json"
	"fmt"
)

// Result is the outcome of one tool invocation: either an upstream payload or
// an error description, never both. The JSON shape is part of the tool
// contract with assistants: a success marshals to the upstream body unchanged
// (ScrapeGraphAI payloads carry their own result/status fields), a failure
// marshals to {"error": "<message>"}. Callers discriminate on the presence of
// the "error" key.
type Result struct {
	payload json.RawMessage
	errMsg  string
	isErr   bool
}

// OK returns a success result carrying the upstream payload unchanged.
func OK(payload json.RawMessage) Result {
	return Result{payload: payload}
}

// Error returns a failure result with the given message.
func Error(msg string) Result {
	return Result{errMsg: msg, isErr: true}
}

// Errorf returns a failure result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Error(fmt.Sprintf(format, args...))
}

// IsError reports whether the result is the error variant.
func (r Result) IsError() bool {
	return r.isErr
}

// ErrMessage returns the error description, or "" for a success.
func (r Result) ErrMessage() string {
	return r.errMsg
}

// Payload returns the success payload, or nil for a failure.
func (r Result) Payload() json.RawMessage {
	return r.payload
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.isErr {
		return json.Marshal(map[string]string{"error": r.errMsg})
	}
	if len(r.payload) == 0 {
		return []byte("null"), nil
	}
	return r.payload, nil
}
