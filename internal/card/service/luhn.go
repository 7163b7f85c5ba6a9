package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	apperrors "github.com/allisson/cardcheck/internal/errors"
)

// Luhn implements Validator and Generator with the Luhn (mod 10) algorithm.
type Luhn struct{}

// NewLuhn creates a Luhn validator and generator.
func NewLuhn() *Luhn {
	return &Luhn{}
}

// Validate checks the preconditions on the candidate and then compares its last digit
// with the check digit computed from the remaining digits.
func (l *Luhn) Validate(candidate string) (bool, error) {
	if candidate == "" {
		return false, cardDomain.ErrEmptyCardNumber
	}

	if _, err := parseDigits(candidate); err != nil {
		return false, err
	}

	length := len(candidate)
	if length < cardDomain.MinCardLength || length > cardDomain.MaxCardLength {
		return false, apperrors.Wrapf(cardDomain.ErrInvalidCardNumberLength, "got %d digits", length)
	}

	expected, err := CheckDigit(candidate[:length-1])
	if err != nil {
		return false, err
	}

	return expected == int(candidate[length-1]-'0'), nil
}

// Generate creates a random Luhn-valid number of the given length starting with prefix.
// Random digits come from crypto/rand.
func (l *Luhn) Generate(prefix string, length int) (string, error) {
	if length < cardDomain.MinCardLength || length > cardDomain.MaxCardLength {
		return "", apperrors.Wrapf(cardDomain.ErrInvalidCardNumberLength, "got length %d", length)
	}

	prefixDigits, err := parseDigits(prefix)
	if err != nil {
		return "", err
	}
	if len(prefixDigits) >= length {
		return "", apperrors.Wrapf(apperrors.ErrInvalidInput, "prefix must be shorter than %d digits", length)
	}

	number := make([]byte, length)
	copy(number, prefix)

	for i := len(prefixDigits); i < length-1; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		number[i] = byte('0' + n.Int64())
	}

	checkDigit, err := CheckDigit(string(number[:length-1]))
	if err != nil {
		return "", err
	}
	number[length-1] = byte('0' + checkDigit)

	return string(number), nil
}

// CheckDigit returns the Luhn check digit for payload (the number without its
// final digit). Validate and Generate both go through it.
func CheckDigit(payload string) (int, error) {
	digits, err := parseDigits(payload)
	if err != nil {
		return 0, err
	}
	return calculateLuhnCheckDigit(digits), nil
}

// parseDigits converts an ASCII digit string into its digit values.
func parseDigits(s string) ([]int, error) {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, apperrors.Wrapf(cardDomain.ErrNonDigitCardNumber, "unexpected character at position %d", i+1)
		}
		digits[i] = int(c - '0')
	}
	return digits, nil
}

// calculateLuhnCheckDigit calculates the Luhn check digit for the given digits.
// The digits slice must NOT include the check digit position.
func calculateLuhnCheckDigit(digits []int) int {
	sum := 0
	length := len(digits)

	// The payload digit right next to the check digit is doubled, then every second one.
	for i := 0; i < length; i++ {
		digit := digits[length-1-i]

		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return (10 - (sum % 10)) % 10
}
