package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTemplateNotFound is returned when a template ID is unknown to the registry.
var ErrTemplateNotFound = errors.New("template not found")

// ErrQuestionNotFound is returned when a question ID does not exist in the
// targeted template.
var ErrQuestionNotFound = errors.New("question not found")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// Validation error codes.
const (
	// ValidationRequired: the question is required but the answer is empty.
	ValidationRequired = "required"
	// ValidationPattern: the answer does not match the question's pattern.
	ValidationPattern = "pattern"
	// ValidationLength: the answer violates a min/max length bound.
	ValidationLength = "length"
	// ValidationType: the answer cannot be coerced to the question's type.
	ValidationType = "type"
)

// ValidationError reports that a single proposed answer was rejected.
// It is an expected, recoverable condition, not a fatal one.
type ValidationError struct {
	QuestionID string `json:"question_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("answer for %q rejected (%s): %s", e.QuestionID, e.Code, e.Message)
}

// MissingFieldsError reports every required field still unanswered at
// generation time, so callers can prompt for all of them at once.
type MissingFieldsError struct {
	// Fields holds the missing question IDs in template declaration order.
	Fields []string `json:"fields"`
	// Labels holds the matching question prompts.
	Labels []string `json:"labels"`
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
