// Package domain defines the card validation domain model: card number
// constraints, brand labels, validation outcomes and batch results.
package domain

// Card number length constraints.
const (
	// MinCardLength is the shortest accepted card number.
	MinCardLength = 13

	// MaxCardLength is the longest accepted card number.
	MaxCardLength = 19
)

// CardNumberColumn is the header name a batch CSV must contain.
const CardNumberColumn = "card_number"
