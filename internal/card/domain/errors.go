package domain

import (
	"github.com/allisson/cardcheck/internal/errors"
)

var (
	// ErrInvalidCardNumber indicates a candidate that cannot be checked at all.
	ErrInvalidCardNumber = errors.Wrap(errors.ErrInvalidInput, "invalid card number")

	// ErrEmptyCardNumber indicates an empty candidate.
	ErrEmptyCardNumber = errors.Wrap(ErrInvalidCardNumber, "card number must not be empty")

	// ErrNonDigitCardNumber indicates a candidate with a non-digit character.
	ErrNonDigitCardNumber = errors.Wrap(ErrInvalidCardNumber, "card number must contain only digits")

	// ErrInvalidCardNumberLength indicates a candidate outside [MinCardLength, MaxCardLength].
	ErrInvalidCardNumberLength = errors.Wrap(ErrInvalidCardNumber, "card number must have 13-19 digits")

	// ErrSourceNotFound indicates the batch input file does not exist.
	ErrSourceNotFound = errors.Wrap(errors.ErrNotFound, "batch source not found")

	// ErrMissingCardNumberColumn indicates the batch input lacks the card_number column.
	ErrMissingCardNumberColumn = errors.Wrap(errors.ErrInvalidInput, "batch source must have a 'card_number' column")
)
