package commands

import (
	"fmt"
	"io"

	validation "github.com/jellydator/validation"

	cardService "github.com/allisson/cardcheck/internal/card/service"
	customValidation "github.com/allisson/cardcheck/internal/validation"
)

// MaxGenerateCount bounds a single generate run.
const MaxGenerateCount = 1000

// RunGenerate prints count Luhn-valid test numbers of the given length.
func RunGenerate(
	generator cardService.Generator,
	classifier cardService.Classifier,
	writer io.Writer,
	prefix string,
	length int,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := validation.Validate(prefix, customValidation.Digits); err != nil {
		return fmt.Errorf("invalid prefix: %w", customValidation.WrapValidationError(err))
	}
	if count < 1 || count > MaxGenerateCount {
		return fmt.Errorf("count must be between 1 and %d", MaxGenerateCount)
	}

	numbers := make([]string, 0, count)
	for range count {
		number, err := generator.Generate(prefix, length)
		if err != nil {
			return fmt.Errorf("failed to generate card number: %w", err)
		}
		numbers = append(numbers, number)
	}

	if format == "json" {
		type generated struct {
			CardNumber string `json:"card_number"`
			Brand      string `json:"brand"`
		}
		output := make([]generated, 0, len(numbers))
		for _, number := range numbers {
			output = append(output, generated{CardNumber: number, Brand: classifier.Classify(number).String()})
		}
		return writeJSON(writer, output)
	}

	for _, number := range numbers {
		_, _ = fmt.Fprintln(writer, number)
	}
	return nil
}
