package voiceSession

import (
	"context"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Turn is one message in the conversation. Immutable once created.
type Turn struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// Reply is the backend's answer for one user turn: the final text plus the
// fully buffered synthesized audio.
type Reply struct {
	Text  string
	Audio []byte
}

// Backend submits the trailing window of the conversation and returns the
// assistant's reply. Implemented by assistantClient.
type Backend interface {
	Converse(ctx context.Context, window []Turn) (*Reply, error)
}
