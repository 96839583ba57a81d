package services

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when a request arrives without its required input.
var ErrMissingInput = errors.New("missing required input")

// DocumentParseError reports an uploaded document that could not be turned into text.
type DocumentParseError struct {
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("failed to parse document: %v", e.Err)
}

func (e *DocumentParseError) Unwrap() error {
	return e.Err
}

// AdviceGenerationError reports a failed, timed out or unreadable call to the model.
type AdviceGenerationError struct {
	Err error
}

func (e *AdviceGenerationError) Error() string {
	return fmt.Sprintf("failed to generate advice: %v", e.Err)
}

func (e *AdviceGenerationError) Unwrap() error {
	return e.Err
}
