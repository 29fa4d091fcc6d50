// Package validation provides custom validation rules for request DTOs.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/passgen/internal/errors"
	"github.com/allisson/passgen/internal/passwords/domain"
)

// WrapValidationError wraps validation errors as ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// GenerationMode validates a generation mode name. Empty values pass so that
// callers can apply a default.
var GenerationMode = validation.By(func(value any) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_mode_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if err := domain.Mode(s).Validate(); err != nil {
		return validation.NewError(
			"validation_mode",
			fmt.Sprintf("must be one of %q or %q", domain.ModePolicy, domain.ModePronounceable),
		)
	}
	return nil
})

// MaxRunes limits a string to max characters, counting runes rather than bytes.
type MaxRunes int

// Validate checks the rune count of value.
func (m MaxRunes) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_max_runes_type", "must be a string")
	}
	if utf8.RuneCountInString(s) > int(m) {
		return validation.NewError(
			"validation_max_runes",
			fmt.Sprintf("must be at most %d characters", int(m)),
		)
	}
	return nil
}
