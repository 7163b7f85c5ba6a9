package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	cardService "github.com/allisson/cardcheck/internal/card/service"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

// RunInteractive prompts for card numbers until the user declines to continue or
// input ends. Malformed numbers print the error and prompt again.
func RunInteractive(
	ctx context.Context,
	validationUseCase cardUseCase.ValidationUseCase,
	logger *slog.Logger,
	io IOTuple,
	audit bool,
) error {
	scanner := bufio.NewScanner(io.Reader)
	checked := 0

	_, _ = fmt.Fprintln(io.Writer, "Card number validator (Luhn)")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(io.Writer, "Enter card number: ")
		if !scanner.Scan() {
			break
		}
		cardNumber := strings.TrimSpace(scanner.Text())

		outcome, err := validationUseCase.Validate(ctx, cardNumber, audit)
		if err != nil {
			_, _ = fmt.Fprintf(io.Writer, "Error: %v\n", err)
			continue
		}
		checked++

		_, _ = fmt.Fprintf(io.Writer, "%s is %s (%s)\n",
			cardService.MaskCardNumber(cardNumber),
			validityLabel(outcome.Valid),
			outcome.Brand,
		)

		_, _ = fmt.Fprint(io.Writer, "Validate another? (y/n): ")
		if !scanner.Scan() {
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer)
	logger.Info("interactive session finished", slog.Int("checked", checked))
	return nil
}
