// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/cardcheck/internal/validation"
)

// ValidateCardRequest contains a card number to validate. Audit overrides the
// server default when present.
type ValidateCardRequest struct {
	CardNumber string `json:"card_number"`
	Audit      *bool  `json:"audit"`
}

// Validate checks if the validate card request is well formed. Digit and length
// rules belong to the checksum validator and are reported by it.
func (r *ValidateCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CardNumber,
			validation.Required,
			customValidation.NoWhitespace,
			validation.Length(1, 64),
		),
	)
}

// AuditEnabled resolves the audit flag against the server default.
func (r *ValidateCardRequest) AuditEnabled(defaultValue bool) bool {
	if r.Audit == nil {
		return defaultValue
	}
	return *r.Audit
}
