package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Quiz specific errors
	ErrLoadFailed      ErrorCode = "LOAD_FAILED"
	ErrNoQuestions     ErrorCode = "NO_QUESTIONS"
	ErrQuizUnavailable ErrorCode = "QUIZ_UNAVAILABLE"
)

// User-visible messages for the two terminal load outcomes.
const (
	MessageLoadFailed  = "Failed to load questions."
	MessageNoQuestions = "No questions loaded."
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewLoadFailedError(err error) *DomainError {
	return NewError(ErrLoadFailed, MessageLoadFailed, err)
}

func NewNoQuestionsError() *DomainError {
	return NewError(ErrNoQuestions, MessageNoQuestions, nil)
}

func NewQuizUnavailableError(reason string) *DomainError {
	return NewError(ErrQuizUnavailable, reason, nil)
}

// CodeOf returns the ErrorCode carried by err, or ErrInternal when err is not a DomainError.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ErrInternal
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every invalid field of a request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Field + ": " + e.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min int) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("must be at least %d, got %d", min, value)}
}
