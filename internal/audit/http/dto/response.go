// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
)

// AuditRecordResponse represents an audit record in API responses. ID is empty for
// records read from the CSV store.
type AuditRecordResponse struct {
	ID         string    `json:"id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	CardHash   string    `json:"card_hash"`
	IsValid    bool      `json:"is_valid"`
	CardType   string    `json:"card_type"`
	CardLength int       `json:"card_length"`
}

// MapAuditRecordToResponse converts a domain audit record to an API response.
func MapAuditRecordToResponse(record *auditDomain.Record) AuditRecordResponse {
	response := AuditRecordResponse{
		Timestamp:  record.Timestamp,
		CardHash:   record.CardHash,
		IsValid:    record.IsValid,
		CardType:   record.CardType,
		CardLength: record.CardLength,
	}
	if record.ID != uuid.Nil {
		response.ID = record.ID.String()
	}
	return response
}

// ListAuditRecordsResponse represents a page of audit records.
type ListAuditRecordsResponse struct {
	Data []AuditRecordResponse `json:"data"`
}

// MapAuditRecordsToListResponse converts domain audit records to a list API response.
func MapAuditRecordsToListResponse(records []*auditDomain.Record) ListAuditRecordsResponse {
	data := make([]AuditRecordResponse, 0, len(records))
	for _, record := range records {
		data = append(data, MapAuditRecordToResponse(record))
	}
	return ListAuditRecordsResponse{Data: data}
}
