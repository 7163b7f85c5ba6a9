// Package http provides HTTP handlers for card validation.
package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardcheck/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardcheck/internal/card/usecase"
	"github.com/allisson/cardcheck/internal/httputil"
	customValidation "github.com/allisson/cardcheck/internal/validation"
)

// MaxBatchBodyBytes bounds the size of an uploaded batch.
const MaxBatchBodyBytes = 10 << 20

// CardHandler handles HTTP requests for card validation.
type CardHandler struct {
	validationUseCase cardUseCase.ValidationUseCase
	batchUseCase      cardUseCase.BatchUseCase
	auditDefault      bool
	logger            *slog.Logger
}

// NewCardHandler creates a new card handler. auditDefault applies when a request
// does not say whether it should be audited.
func NewCardHandler(
	validationUseCase cardUseCase.ValidationUseCase,
	batchUseCase cardUseCase.BatchUseCase,
	auditDefault bool,
	logger *slog.Logger,
) *CardHandler {
	return &CardHandler{
		validationUseCase: validationUseCase,
		batchUseCase:      batchUseCase,
		auditDefault:      auditDefault,
		logger:            logger,
	}
}

// ValidateHandler validates a single card number.
// POST /v1/cards/validate - Returns 200 OK with the outcome, 422 for malformed numbers.
func (h *CardHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateCardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	outcome, err := h.validationUseCase.Validate(
		c.Request.Context(),
		req.CardNumber,
		req.AuditEnabled(h.auditDefault),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOutcomeToResponse(req.CardNumber, outcome))
}

// ValidateBatchHandler validates a CSV upload with a card_number column.
// POST /v1/cards/validate-batch?audit=true - Body is the CSV document. Returns 200 OK
// with a summary and per-row results, 422 when the card_number column is missing.
func (h *CardHandler) ValidateBatchHandler(c *gin.Context) {
	audit, err := httputil.ParseBoolQuery(c, "audit", h.auditDefault)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, MaxBatchBodyBytes)
	results, err := h.batchUseCase.ValidateReader(c.Request.Context(), body, audit)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			c.JSON(http.StatusRequestEntityTooLarge, httputil.ErrorResponse{
				Error:   "payload_too_large",
				Message: err.Error(),
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBatchResultsToResponse(results))
}
