package validation

import (
	"errors"
	"strings"
	"unicode/utf8"

	"rurallearn/internal/domain"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxQueryLength bounds the library search text.
	MaxQueryLength = 100
	// MaxSubjectLength bounds the subject selector value.
	MaxSubjectLength = 50
)

// Validator provides request and record validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// ValidateStruct checks the `validate` tags of s.
func (v *Validator) ValidateStruct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("record", err.Error())}
	}

	var errs domain.ValidationErrors
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		switch fe.Tag() {
		case "required":
			errs = append(errs, domain.NewMissingFieldError(field))
		default:
			e := domain.NewInvalidFormatError(field, fe.Value())
			e.Message = field + " failed the " + fe.Tag() + " rule"
			if fe.Param() != "" {
				e.Message += " (" + fe.Param() + ")"
			}
			errs = append(errs, e)
		}
	}
	return errs
}

// ValidateLibraryQuery validates the search text and subject selector.
func (v *Validator) ValidateLibraryQuery(query, subject string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if n := utf8.RuneCountInString(query); n > MaxQueryLength {
		errs = append(errs, domain.NewOutOfRangeError("q", n, 0, MaxQueryLength))
	}
	if n := utf8.RuneCountInString(subject); n > MaxSubjectLength {
		errs = append(errs, domain.NewOutOfRangeError("subject", n, 0, MaxSubjectLength))
	}

	return errs
}

// ValidateOption checks that a quiz option was submitted.
// Whether it is in range is decided by the quiz session.
func (v *Validator) ValidateOption(option string) domain.ValidationErrors {
	if strings.TrimSpace(option) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("option")}
	}
	if err := v.validate.Var(option, "numeric"); err != nil {
		return domain.ValidationErrors{domain.NewInvalidFormatError("option", option)}
	}
	return nil
}

// ValidateChatDraft bounds the chat draft length. An empty draft is valid.
func (v *Validator) ValidateChatDraft(message string) domain.ValidationErrors {
	if n := utf8.RuneCountInString(message); n > domain.MaxChatDraftLength {
		return domain.ValidationErrors{domain.NewOutOfRangeError("message", n, 0, domain.MaxChatDraftLength)}
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
