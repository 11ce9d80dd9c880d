package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestConvertToOpenAIMessagesRoles(t *testing.T) {
	messages := []ChatMessage{
		SystemMessage("système"),
		UserMessage("bonjour"),
		AssistantMessage("réponse"),
		ToolMessage("call-1", "résultat"),
	}

	converted := convertToOpenAIMessages(messages)
	if len(converted) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(converted))
	}

	expectedRoles := []string{"system", "user", "assistant", "tool"}
	for i, role := range expectedRoles {
		if converted[i].Role != role {
			t.Errorf("message %d: expected role %s, got %s", i, role, converted[i].Role)
		}
	}

	if converted[3].ToolCallID != "call-1" {
		t.Errorf("expected tool call id preserved, got %q", converted[3].ToolCallID)
	}
}

func TestConvertToOpenAIMessagesImage(t *testing.T) {
	msg := ChatMessage{
		Role:     "user",
		Content:  "voici la boîte",
		ImageURL: "data:image/jpeg;base64,abc",
	}

	converted := convertToOpenAIMessages([]ChatMessage{msg})[0]

	// Content moves into the multimodal parts
	if converted.Content != "" {
		t.Errorf("expected empty plain content, got %q", converted.Content)
	}
	if len(converted.MultiContent) != 2 {
		t.Fatalf("expected text and image parts, got %d", len(converted.MultiContent))
	}
	if converted.MultiContent[0].Type != openai.ChatMessagePartTypeText ||
		converted.MultiContent[0].Text != "voici la boîte" {
		t.Errorf("unexpected text part %+v", converted.MultiContent[0])
	}
	if converted.MultiContent[1].Type != openai.ChatMessagePartTypeImageURL ||
		converted.MultiContent[1].ImageURL.URL != "data:image/jpeg;base64,abc" {
		t.Errorf("unexpected image part %+v", converted.MultiContent[1])
	}
}

func TestConvertToOpenAIMessagesToolCalls(t *testing.T) {
	msg := ChatMessage{
		Role: "assistant",
		ToolCalls: []ToolCall{{
			ID:        "call-1",
			Name:      "search",
			Arguments: json.RawMessage(`{"q":"x"}`),
		}},
	}

	converted := convertToOpenAIMessages([]ChatMessage{msg})[0]
	if len(converted.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(converted.ToolCalls))
	}

	tc := converted.ToolCalls[0]
	if tc.Type != openai.ToolTypeFunction || tc.Function.Name != "search" || tc.Function.Arguments != `{"q":"x"}` {
		t.Errorf("unexpected tool call %+v", tc)
	}
}

func TestConvertToOpenAITools(t *testing.T) {
	tools := []ToolDefinition{{
		Name:        "search",
		Description: "recherche",
		Parameters:  map[string]interface{}{"type": "object"},
	}}

	converted := convertToOpenAITools(tools)
	if len(converted) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(converted))
	}
	if converted[0].Type != openai.ToolTypeFunction {
		t.Errorf("unexpected tool type %v", converted[0].Type)
	}
	if converted[0].Function.Name != "search" || converted[0].Function.Description != "recherche" {
		t.Errorf("unexpected function definition %+v", converted[0].Function)
	}
}

func TestStatusCode(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: 429}
	if got := StatusCode(fmt.Errorf("wrapped: %w", apiErr)); got != 429 {
		t.Errorf("expected 429 from APIError, got %d", got)
	}

	reqErr := &openai.RequestError{HTTPStatusCode: 503}
	if got := StatusCode(fmt.Errorf("wrapped: %w", reqErr)); got != 503 {
		t.Errorf("expected 503 from RequestError, got %d", got)
	}

	if got := StatusCode(errors.New("dial tcp: connection refused")); got != 0 {
		t.Errorf("expected 0 for transport error, got %d", got)
	}

	if got := StatusCode(nil); got != 0 {
		t.Errorf("expected 0 for nil error, got %d", got)
	}
}
