package app

import (
	"fmt"

	cardHTTP "github.com/allisson/cardcheck/internal/card/http"
	cardService "github.com/allisson/cardcheck/internal/card/service"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
)

// Validator returns the Luhn validator, which also generates test numbers.
func (c *Container) Validator() *cardService.Luhn {
	c.validatorInit.Do(func() {
		c.validator = cardService.NewLuhn()
	})
	return c.validator
}

// Classifier returns the brand classifier.
func (c *Container) Classifier() cardService.Classifier {
	c.classifierInit.Do(func() {
		c.classifier = cardService.NewBrandClassifier()
	})
	return c.classifier
}

// ValidationUseCase returns the single card validation use case.
func (c *Container) ValidationUseCase() (cardUseCase.ValidationUseCase, error) {
	var err error
	c.validationUseCaseInit.Do(func() {
		c.validationUseCase, err = c.initValidationUseCase()
		if err != nil {
			c.setInitError("validationUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("validationUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.validationUseCase, nil
}

// BatchUseCase returns the CSV batch validation use case.
func (c *Container) BatchUseCase() (cardUseCase.BatchUseCase, error) {
	var err error
	c.batchUseCaseInit.Do(func() {
		c.batchUseCase, err = c.initBatchUseCase()
		if err != nil {
			c.setInitError("batchUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("batchUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.batchUseCase, nil
}

// CardHandler returns the HTTP handler for card validation.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	var err error
	c.cardHandlerInit.Do(func() {
		c.cardHandler, err = c.initCardHandler()
		if err != nil {
			c.setInitError("cardHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cardHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.cardHandler, nil
}

// initValidationUseCase creates the validation use case. The audit recorder is always
// wired so callers can opt in per request; the audit store is reached on first use.
func (c *Container) initValidationUseCase() (cardUseCase.ValidationUseCase, error) {
	auditUseCase, err := c.deferredAuditUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get audit use case for validation use case: %w", err)
	}

	baseUseCase := cardUseCase.NewValidationUseCase(c.Validator(), c.Classifier(), auditUseCase, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for validation use case: %w", err)
		}
		return cardUseCase.NewValidationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initBatchUseCase() (cardUseCase.BatchUseCase, error) {
	validationUseCase, err := c.ValidationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get validation use case for batch use case: %w", err)
	}

	baseUseCase := cardUseCase.NewBatchUseCase(validationUseCase, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for batch use case: %w", err)
		}
		return cardUseCase.NewBatchUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initCardHandler() (*cardHTTP.CardHandler, error) {
	validationUseCase, err := c.ValidationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get validation use case for card handler: %w", err)
	}

	batchUseCase, err := c.BatchUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get batch use case for card handler: %w", err)
	}

	return cardHTTP.NewCardHandler(validationUseCase, batchUseCase, c.config.AuditEnabled, c.Logger()), nil
}
