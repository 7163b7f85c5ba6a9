package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

func TestMapOutcomeToResponse(t *testing.T) {
	outcome := &cardDomain.Outcome{Valid: true, Brand: cardDomain.BrandVisa, Length: 16, Audited: true}

	response := MapOutcomeToResponse("4111111111111111", outcome)

	assert.Equal(t, ValidateCardResponse{
		MaskedNumber: "411111******1111",
		Valid:        true,
		Brand:        "Visa",
		Length:       16,
		Audited:      true,
	}, response)
}

func TestMapBatchResultsToResponse(t *testing.T) {
	results := []*cardDomain.BatchResult{
		{Row: 2, CardNumber: "4111111111111111", Valid: true, Brand: cardDomain.BrandVisa},
		{Row: 3, CardNumber: "4111111111111112", Brand: cardDomain.BrandVisa},
		{Row: 4, CardNumber: "12ab", Brand: cardDomain.BrandUnknown, Err: cardDomain.ErrNonDigitCardNumber},
	}

	response := MapBatchResultsToResponse(results)

	assert.Equal(t, BatchSummaryResponse{Total: 3, Valid: 1, Invalid: 1, Errors: 1}, response.Summary)
	require.Len(t, response.Results, 3)
	assert.Equal(t, "411111******1112", response.Results[1].MaskedNumber)
	assert.Equal(t, "****", response.Results[2].MaskedNumber)
	assert.Contains(t, response.Results[2].Error, "must contain only digits")

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "4111111111111111")
}
