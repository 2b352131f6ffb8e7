package middleware

import (
	"rurallearn/internal/domain"
	"rurallearn/internal/dto"
	"rurallearn/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by ValidationMiddleware.
const (
	ValidatedQueryKey   = "validated_query"
	ValidatedSubjectKey = "validated_subject"
	ValidatedOptionKey  = "validated_option"
	ValidatedMessageKey = "validated_message"
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

// ValidateLibraryQuery validates the q and subject query parameters.
func (vm *ValidationMiddleware) ValidateLibraryQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		subject := c.Query("subject")

		if errs := vm.validator.ValidateLibraryQuery(query, subject); len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedQueryKey, query)
		c.Locals(ValidatedSubjectKey, subject)
		return c.Next()
	}
}

// ValidateOption reads the chosen quiz option from a form or JSON body.
func (vm *ValidationMiddleware) ValidateOption() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SelectOptionRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}

		if errs := vm.validator.ValidateOption(req.Option); len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedOptionKey, req.Option)
		return c.Next()
	}
}

// ValidateChatDraft reads the chat draft from a form or JSON body.
func (vm *ValidationMiddleware) ValidateChatDraft() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.ChatDraftRequest
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}

		if errs := vm.validator.ValidateChatDraft(req.Message); len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedMessageKey, req.Message)
		return c.Next()
	}
}

// LocalString returns a string stored in the request locals, or "".
func LocalString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
