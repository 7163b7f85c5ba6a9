package service

import "strings"

// MaskCardNumber keeps the first 6 and last 4 characters and replaces the rest
// with '*'. Inputs of 10 characters or fewer are fully masked.
func MaskCardNumber(cardNumber string) string {
	runes := []rune(cardNumber)
	length := len(runes)
	if length <= 10 {
		return strings.Repeat("*", length)
	}

	var masked strings.Builder
	masked.Grow(length)
	masked.WriteString(string(runes[:6]))
	masked.WriteString(strings.Repeat("*", length-10))
	masked.WriteString(string(runes[length-4:]))

	return masked.String()
}

// LastFour returns the last four characters of cardNumber for log lines. Inputs
// shorter than 8 characters are fully masked.
func LastFour(cardNumber string) string {
	runes := []rune(cardNumber)
	if len(runes) < 8 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[len(runes)-4:])
}
