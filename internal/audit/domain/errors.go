package domain

import (
	"github.com/allisson/cardcheck/internal/errors"
)

var (
	// ErrUnsupportedAlgorithm indicates an unknown digest variant was requested.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrUnsupported, "unsupported digest algorithm")

	// ErrAuditWriteFailed indicates the audit record could not be persisted.
	ErrAuditWriteFailed = errors.Wrap(errors.ErrWriteFailed, "audit write failed")

	// ErrMalformedAuditLog indicates an existing audit log could not be parsed.
	ErrMalformedAuditLog = errors.Wrap(errors.ErrInvalidInput, "malformed audit log")
)
