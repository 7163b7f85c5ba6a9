package commands

import (
	"fmt"
	"io"

	validation "github.com/jellydator/validation"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	auditService "github.com/allisson/cardcheck/internal/audit/service"
	apperrors "github.com/allisson/cardcheck/internal/errors"
	customValidation "github.com/allisson/cardcheck/internal/validation"
)

// RunHash prints the hex digest the audit log would store for value.
func RunHash(writer io.Writer, value string, algorithm string) error {
	if err := validation.Validate(value, validation.Required, customValidation.NotBlank); err != nil {
		return fmt.Errorf("invalid number: %w", customValidation.WrapValidationError(err))
	}

	if err := validation.Validate(algorithm, validation.Required, customValidation.HashAlgorithm); err != nil {
		return fmt.Errorf("invalid algorithm %q: %w", algorithm, apperrors.Wrap(auditDomain.ErrUnsupportedAlgorithm, err.Error()))
	}

	alg, err := auditDomain.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	hasher, err := auditService.NewHasher(alg)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(writer, hasher.Hash([]byte(value)))
	return nil
}
