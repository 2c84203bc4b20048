package medium

import (
	"fmt"
	"strings"

	"medium-mcp/internal/domain/entity"
)

// classifyError converts an upstream failure into a stable, client-facing
// operation error. Classification is by substring match on the error
// text, checked in priority order: rate limiting first, then
// authorization, then missing resources, and finally a generic wrapper
// that preserves the original text. Every branch records the failed
// operation under the "context" details key.
func classifyError(err error, context string) *entity.OperationError {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "rate limit"):
		return &entity.OperationError{
			Message:    "Rate limit exceeded. Please try again later.",
			StatusCode: 429,
			Details:    map[string]string{"context": context},
		}
	case strings.Contains(msg, "unauthorized"):
		return &entity.OperationError{
			Message:    "Invalid RapidAPI key. Please check your configuration.",
			StatusCode: 401,
			Details:    map[string]string{"context": context},
		}
	case strings.Contains(msg, "not found"):
		return &entity.OperationError{
			Message:    fmt.Sprintf("Resource not found: %s", context),
			StatusCode: 404,
			Details:    map[string]string{"context": context},
		}
	default:
		return &entity.OperationError{
			Message: fmt.Sprintf("Medium API error in %s: %v", context, err),
			Details: map[string]string{
				"context":        context,
				"original_error": err.Error(),
			},
		}
	}
}
