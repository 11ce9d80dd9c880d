// LLM Provider interface - the abstract interface for model providers.
// Each implementation hides API client initialization, request/response
// format conversion and provider-specific error shapes.

package llm

import (
	"context"
)

// Provider defines the abstract interface for chat-completion providers.
// Both calls are synchronous request/response; no streaming.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the current model being used.
	Model() string

	// Chat sends a chat completion request without tools.
	Chat(ctx context.Context, messages []ChatMessage) (Response, error)

	// ChatWithTools sends a chat completion request with tool definitions.
	// The model may respond with tool calls in Response.ToolCalls.
	ChatWithTools(ctx context.Context, messages []ChatMessage, tools []ToolDefinition) (Response, error)
}
