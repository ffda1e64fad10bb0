package validation

import (
	"regexp"
	"strings"

	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
)

var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateAnswerRequest checks that an option position was sent. The upper
// bound depends on the current question and is checked by the service.
func (v *Validator) ValidateAnswerRequest(req *dto.AnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req == nil || req.Option == nil {
		errors = append(errors, domain.NewMissingFieldError("option"))
		return errors
	}
	if *req.Option < 0 {
		errors = append(errors, domain.NewOutOfRangeError("option", *req.Option, 0))
	}
	return errors
}

// NormalizeResultID returns the canonical upper-case form under which results are stored.
func NormalizeResultID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ValidateResultID checks that id looks like a result ULID, in either case.
func (v *Validator) ValidateResultID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !ulidPattern.MatchString(NormalizeResultID(id)) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}
