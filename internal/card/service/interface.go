// Package service provides the card number algorithms: Luhn validation and
// test number generation, brand classification and masking.
package service

import (
	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

// Validator checks a card number candidate.
type Validator interface {
	// Validate returns whether the candidate passes the Luhn check. It fails with
	// an error wrapping domain.ErrInvalidCardNumber when the candidate is empty,
	// has a non-digit character or has a length outside 13-19.
	Validate(candidate string) (bool, error)
}

// Generator produces Luhn-valid card numbers for testing.
type Generator interface {
	Generate(prefix string, length int) (string, error)
}

// Classifier derives a brand label from the card number prefix.
type Classifier interface {
	Classify(candidate string) cardDomain.Brand
}
