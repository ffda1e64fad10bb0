package middleware

import (
	"quiz-runner/internal/domain"
	"quiz-runner/internal/dto"
	"quiz-runner/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalsOption   = "validated_option"
	LocalsResultID = "validated_result_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateAnswer parses the option position from a JSON or form body.
func (vm *ValidationMiddleware) ValidateAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("body", err.Error())}
		}
		if errs := vm.validator.ValidateAnswerRequest(&req); len(errs) > 0 {
			return errs
		}

		c.Locals(LocalsOption, *req.Option)
		return c.Next()
	}
}

// ValidateResultID checks the :id path parameter.
func (vm *ValidationMiddleware) ValidateResultID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateResultID(id); len(errs) > 0 {
			return errs
		}

		c.Locals(LocalsResultID, validation.NormalizeResultID(id))
		return c.Next()
	}
}
