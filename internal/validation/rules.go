// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Digits validates that a string only holds ASCII digits
var Digits = validation.NewStringRuleWithError(
	func(s string) bool {
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_digits", "must contain only digits"),
)

// HashAlgorithm validates a digest algorithm name
var HashAlgorithm = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := auditDomain.ParseAlgorithm(s)
		return err == nil
	},
	validation.NewError("validation_hash_algorithm", "must be one of sha3-256, sha3-512"),
)

// OutputFormat validates a CLI output format
var OutputFormat = validation.In("text", "json").Error("must be one of text, json")
