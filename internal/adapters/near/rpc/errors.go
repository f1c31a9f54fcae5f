package rpc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error is a JSON-RPC error object as returned by nearcore.
type Error struct {
	Name    string          `json:"name"`
	Cause   *ErrorCause     `json:"cause"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type ErrorCause struct {
	Name string          `json:"name"`
	Info json.RawMessage `json:"info"`
}

func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	name := e.Name
	if e.Cause != nil && e.Cause.Name != "" {
		name = strings.Trim(name+"/"+e.Cause.Name, "/")
	}
	if name != "" {
		parts = append(parts, name)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if data := e.dataText(); data != "" && data != e.Message {
		parts = append(parts, data)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("rpc error %d", e.Code)
	}

	return "rpc " + strings.Join(parts, ": ")
}

// CauseName is the machine readable reason, e.g. UNKNOWN_ACCOUNT.
func (e *Error) CauseName() string {
	if e.Cause == nil {
		return ""
	}
	return e.Cause.Name
}

func (e *Error) dataText() string {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return ""
	}

	var text string
	if err := json.Unmarshal(e.Data, &text); err == nil {
		return text
	}

	return compactJSON(e.Data)
}
