package middleware

import (
	"errors"
	"net/http"
	"strings"

	"rurallearn/internal/domain"
	"rurallearn/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIPrefix marks requests that get JSON error bodies.
const APIPrefix = "/api"

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorPage renders an error for browser requests.
type ErrorPage func(c *fiber.Ctx, status int, message string) error

// ErrorHandler is a centralized error handling middleware. Requests under
// APIPrefix, or every request when page is nil, get a JSON body.
func ErrorHandler(page ErrorPage) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()
		status, body := classify(err)

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Request failed",
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
		default:
			log.Warn("Request rejected",
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err),
			)
		}

		if page == nil || strings.HasPrefix(c.Path(), APIPrefix) {
			return c.Status(status).JSON(body)
		}
		return page(c, status, message(body))
	}
}

func classify(err error) (int, interface{}) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status := mapDomainErrorToHTTPStatus(domainErr)
		resp := ErrorResponse{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Status:  status,
		}
		if len(domainErr.Context) > 0 {
			resp.Details = domainErr.Context
		}
		return status, resp
	}

	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, ValidationErrorResponse{
			Code:    string(domain.CodeValidation),
			Message: "Request validation failed",
			Status:  http.StatusBadRequest,
			Errors:  validationErrs,
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, ErrorResponse{
			Code:    "HTTP_ERROR",
			Message: fiberErr.Message,
			Status:  fiberErr.Code,
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Code:    string(domain.CodeInternal),
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}
}

func message(body interface{}) string {
	switch b := body.(type) {
	case ValidationErrorResponse:
		if len(b.Errors) > 0 {
			return b.Errors[0].Message
		}
		return b.Message
	case ErrorResponse:
		return b.Message
	}
	return "Something went wrong"
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeInvalidOption,
		domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeSessionUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
