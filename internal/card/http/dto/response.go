package dto

import (
	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	cardService "github.com/allisson/cardcheck/internal/card/service"
)

// ValidateCardResponse is the result of a single validation. The card number is
// only echoed in masked form.
type ValidateCardResponse struct {
	MaskedNumber string `json:"masked_number"`
	Valid        bool   `json:"valid"`
	Brand        string `json:"brand"`
	Length       int    `json:"length"`
	Audited      bool   `json:"audited"`
}

// MapOutcomeToResponse converts a validation outcome to an API response.
func MapOutcomeToResponse(cardNumber string, outcome *cardDomain.Outcome) ValidateCardResponse {
	return ValidateCardResponse{
		MaskedNumber: cardService.MaskCardNumber(cardNumber),
		Valid:        outcome.Valid,
		Brand:        outcome.Brand.String(),
		Length:       outcome.Length,
		Audited:      outcome.Audited,
	}
}

// BatchRowResponse is the result of one batch row.
type BatchRowResponse struct {
	Row          int    `json:"row"`
	MaskedNumber string `json:"masked_number"`
	Valid        bool   `json:"valid"`
	Brand        string `json:"brand"`
	Audited      bool   `json:"audited"`
	Error        string `json:"error,omitempty"`
}

// BatchSummaryResponse aggregates a batch run.
type BatchSummaryResponse struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	Errors  int `json:"errors"`
}

// ValidateBatchResponse contains the summary and per-row results of a batch.
type ValidateBatchResponse struct {
	Summary BatchSummaryResponse `json:"summary"`
	Results []BatchRowResponse   `json:"results"`
}

// MapBatchResultsToResponse converts batch results to an API response.
func MapBatchResultsToResponse(results []*cardDomain.BatchResult) ValidateBatchResponse {
	rows := make([]BatchRowResponse, 0, len(results))
	for _, result := range results {
		row := BatchRowResponse{
			Row:          result.Row,
			MaskedNumber: cardService.MaskCardNumber(result.CardNumber),
			Valid:        result.Valid,
			Brand:        result.Brand.String(),
			Audited:      result.Audited,
		}
		if result.Err != nil {
			row.Error = result.Err.Error()
		}
		rows = append(rows, row)
	}

	summary := cardDomain.Summarize(results)
	return ValidateBatchResponse{
		Summary: BatchSummaryResponse{
			Total:   summary.Total,
			Valid:   summary.Valid,
			Invalid: summary.Invalid,
			Errors:  summary.Errors,
		},
		Results: rows,
	}
}
