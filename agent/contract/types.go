package contract

import (
	statex "github.com/tanpawarit/Chative-Support-Triage/agent/state"
)

type GenerateRequest struct {
	Agent   statex.AgentName      `json:"agent"`
	Input   string                `json:"input"`
	Session statex.SessionContext `json:"session"`
	Config  map[string]any        `json:"config,omitempty"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Text returns the user-facing text of a result.
func (r ToolResult) Text() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Result
}
