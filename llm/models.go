// Package llm provides the language-model capability boundary: shared
// message/tool types and a provider abstraction over chat-completion APIs.
package llm

import "encoding/json"

// ChatMessage represents one conversation turn. An assistant turn may carry
// tool calls; a tool turn carries the ToolCallID it answers; a user turn may
// carry an image as a data URL alongside its text.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ImageURL   string     `json:"image_url,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall represents a structured tool invocation requested by the model.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDefinition defines a tool the model may call.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"` // JSON Schema
}

// SystemMessage creates a system message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: "system", Content: content}
}

// UserMessage creates a user message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: "user", Content: content}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: "assistant", Content: content}
}

// ToolMessage creates a tool-result message answering a tool call.
func ToolMessage(toolCallID, content string) ChatMessage {
	return ChatMessage{Role: "tool", ToolCallID: toolCallID, Content: content}
}

// Response represents a provider reply. ID is the provider-assigned
// continuation identifier; callers thread it back opaquely.
type Response struct {
	ID           string
	Content      string
	FinishReason string
	ToolCalls    []ToolCall
	Usage        *TokenUsage
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	PromptTokens     uint32
	CompletionTokens uint32
	TotalTokens      uint32
}
