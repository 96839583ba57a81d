package services

import (
	"context"
)

// LLMService sends a single user prompt to a remote model.
//
// Complete returns an empty string with a nil error when the remote answered
// but carried no completion text. Transport failures, non-2xx statuses and
// bodies that are not JSON are errors.
type LLMService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
