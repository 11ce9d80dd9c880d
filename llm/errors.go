package llm

import (
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// StatusCode extracts the upstream HTTP status from a provider error,
// or 0 when the failure happened before a status was received (network
// error, cancelled context).
func StatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}

	return 0
}
