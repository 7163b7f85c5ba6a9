// Package http provides HTTP handlers for the audit trail.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardcheck/internal/audit/http/dto"
	auditUseCase "github.com/allisson/cardcheck/internal/audit/usecase"
	"github.com/allisson/cardcheck/internal/httputil"
)

// AuditRecordHandler handles HTTP requests for audit record operations.
type AuditRecordHandler struct {
	auditUseCase auditUseCase.AuditUseCase
	logger       *slog.Logger
}

// NewAuditRecordHandler creates a new audit record handler with required dependencies.
func NewAuditRecordHandler(auditUseCase auditUseCase.AuditUseCase, logger *slog.Logger) *AuditRecordHandler {
	return &AuditRecordHandler{
		auditUseCase: auditUseCase,
		logger:       logger,
	}
}

// ListHandler retrieves audit records in append order.
// GET /v1/audit-records?offset=0&limit=50
func (h *AuditRecordHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	records, err := h.auditUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuditRecordsToListResponse(records))
}
