// Package assistant orchestrates the two-phase consultation exchange: a
// first model call that may request a catalog search, the search itself,
// and a second model call that folds the results into the final answer.
package assistant

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/BlueSkyGuardian/tabibapp/llm"
	"github.com/BlueSkyGuardian/tabibapp/logging"
	"github.com/BlueSkyGuardian/tabibapp/metrics"
	"github.com/BlueSkyGuardian/tabibapp/search"
)

// Turn is one prior message of the conversation as the client replays it.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ImageAttachment is an optional photo sent with the latest message, for
// example a picture of a medicine box or a prescription.
type ImageAttachment struct {
	MimeType string
	Data     []byte
}

// Request carries one consultation round trip.
type Request struct {
	Turns              []Turn
	Image              *ImageAttachment
	PreviousResponseID string
}

// Result is the assistant's final answer for the round trip.
type Result struct {
	Answer     string
	ResponseID string
}

// Fault is a consultation failure carrying a patient-facing notice in the
// product's language alongside the underlying cause.
type Fault struct {
	Notice string
	Err    error
}

func (f *Fault) Error() string { return f.Notice }

func (f *Fault) Unwrap() error { return f.Err }

// Assistant wires a model provider to the catalog search engine.
type Assistant struct {
	provider llm.Provider
	engine   *search.Engine
}

// New builds an assistant over the given provider and search engine.
func New(provider llm.Provider, engine *search.Engine) *Assistant {
	return &Assistant{provider: provider, engine: engine}
}

// Respond runs one consultation round trip. The first model call exposes the
// catalog search tool; if the model invokes it, the search runs locally and a
// second call produces the final answer. Only the first tool call of a
// response is honored.
func (a *Assistant) Respond(ctx context.Context, req Request) (Result, error) {
	// The client replays the whole transcript in Turns; the previous
	// response id is kept for log correlation only.
	if req.PreviousResponseID != "" {
		logging.Debug("Continuing consultation", "previous_response_id", req.PreviousResponseID)
	}

	messages := a.buildMessages(req)

	first, err := a.provider.ChatWithTools(ctx, messages, []llm.ToolDefinition{searchToolDefinition()})
	if err != nil {
		metrics.ModelCallsTotal.WithLabelValues("initial", "error").Inc()
		logging.Error("Initial model call failed", "error", err)
		return Result{}, &Fault{Notice: classifyModelError(err), Err: err}
	}
	metrics.ModelCallsTotal.WithLabelValues("initial", "ok").Inc()

	if len(first.ToolCalls) == 0 {
		return Result{Answer: first.Content, ResponseID: first.ID}, nil
	}

	call := first.ToolCalls[0]
	if call.Name != SearchToolName {
		logging.Warn("Model requested unknown tool", "tool", call.Name)
		return Result{Answer: first.Content, ResponseID: first.ID}, nil
	}

	metrics.ToolCallsTotal.Inc()
	toolResult := a.executeSearch(call)

	followUp := append(messages,
		llm.ChatMessage{Role: "assistant", ToolCalls: []llm.ToolCall{call}},
		llm.ToolMessage(call.ID, toolResult),
	)

	final, err := a.provider.Chat(ctx, followUp)
	if err != nil {
		metrics.ModelCallsTotal.WithLabelValues("final", "error").Inc()
		logging.Error("Final model call failed", "error", err)
		return Result{}, &Fault{Notice: noticeFinalFailed, Err: err}
	}
	metrics.ModelCallsTotal.WithLabelValues("final", "ok").Inc()

	return Result{Answer: final.Content, ResponseID: final.ID}, nil
}

// buildMessages prefixes the system prompt and replays the conversation,
// attaching the image to the latest user turn when one was uploaded.
func (a *Assistant) buildMessages(req Request) []llm.ChatMessage {
	messages := make([]llm.ChatMessage, 0, len(req.Turns)+1)
	messages = append(messages, llm.SystemMessage(systemPrompt))

	lastUser := -1
	for i, turn := range req.Turns {
		if turn.Role == "user" {
			lastUser = i
		}
	}

	for i, turn := range req.Turns {
		msg := llm.ChatMessage{Role: turn.Role, Content: turn.Content}
		if i == lastUser && req.Image != nil {
			msg.ImageURL = fmt.Sprintf("data:%s;base64,%s",
				req.Image.MimeType, base64.StdEncoding.EncodeToString(req.Image.Data))
		}
		messages = append(messages, msg)
	}
	return messages
}

// executeSearch runs one catalog search for a tool call. Faults never
// propagate to the model exchange: malformed or incomplete arguments yield
// the generic search failure notice so the conversation can continue.
func (a *Assistant) executeSearch(call llm.ToolCall) string {
	args, err := parseSearchArgs(call.Arguments)
	if err != nil {
		logging.Warn("Rejected tool call arguments", "tool", call.Name, "error", err)
		return search.ErrorNotice
	}

	results := a.engine.Search(args.ToQuery())
	metrics.SearchResultsReturned.Observe(float64(len(results)))
	logging.Info("Catalog search executed",
		"symptoms", args.Symptoms,
		"composition", args.Composition,
		"therapeutic_class", args.TherapeuticClass,
		"results", len(results),
	)
	return search.FormatResults(results)
}
