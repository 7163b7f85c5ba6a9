package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
	"github.com/allisson/cardcheck/internal/card/http/dto"
	"github.com/allisson/cardcheck/internal/card/usecase/mocks"
)

func setupTestCardHandler(
	t *testing.T,
	auditDefault bool,
) (*CardHandler, *mocks.MockValidationUseCase, *mocks.MockBatchUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockValidation := &mocks.MockValidationUseCase{}
	mockBatch := &mocks.MockBatchUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCardHandler(mockValidation, mockBatch, auditDefault, logger), mockValidation, mockBatch
}

func createTestContext(method, path string, body io.Reader) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, body)
	return c, w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestCardHandler_ValidateHandler(t *testing.T) {
	t.Run("Success_ValidCardUsesAuditDefault", func(t *testing.T) {
		handler, mockValidation, _ := setupTestCardHandler(t, true)

		mockValidation.On("Validate", mock.Anything, "4111111111111111", true).
			Return(&cardDomain.Outcome{Valid: true, Brand: cardDomain.BrandVisa, Length: 16, Audited: true}, nil).
			Once()

		c, w := createTestContext(
			http.MethodPost,
			"/v1/cards/validate",
			jsonBody(t, map[string]any{"card_number": "4111111111111111"}),
		)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.ValidateCardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "411111******1111", response.MaskedNumber)
		assert.True(t, response.Valid)
		assert.Equal(t, "Visa", response.Brand)
		assert.True(t, response.Audited)
		assert.NotContains(t, w.Body.String(), "4111111111111111")
		mockValidation.AssertExpectations(t)
	})

	t.Run("Success_ExplicitAuditFalse", func(t *testing.T) {
		handler, mockValidation, _ := setupTestCardHandler(t, true)

		mockValidation.On("Validate", mock.Anything, "4111111111111112", false).
			Return(&cardDomain.Outcome{Valid: false, Brand: cardDomain.BrandVisa, Length: 16}, nil).
			Once()

		c, w := createTestContext(
			http.MethodPost,
			"/v1/cards/validate",
			jsonBody(t, map[string]any{"card_number": "4111111111111112", "audit": false}),
		)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"valid":false`)
		mockValidation.AssertExpectations(t)
	})

	t.Run("Error_MalformedNumber", func(t *testing.T) {
		handler, mockValidation, _ := setupTestCardHandler(t, false)

		mockValidation.On("Validate", mock.Anything, "4111a", false).
			Return(nil, cardDomain.ErrNonDigitCardNumber).
			Once()

		c, w := createTestContext(
			http.MethodPost,
			"/v1/cards/validate",
			jsonBody(t, map[string]any{"card_number": "4111a"}),
		)

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_input")
	})

	t.Run("Error_MissingCardNumber", func(t *testing.T) {
		handler, mockValidation, _ := setupTestCardHandler(t, false)

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate", jsonBody(t, map[string]any{}))

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "validation_error")
		mockValidation.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _, _ := setupTestCardHandler(t, false)

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate", strings.NewReader("{"))

		handler.ValidateHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "bad_request")
	})
}

func TestCardHandler_ValidateBatchHandler(t *testing.T) {
	t.Run("Success_BatchWithSummary", func(t *testing.T) {
		handler, _, mockBatch := setupTestCardHandler(t, true)

		results := []*cardDomain.BatchResult{
			{Row: 2, CardNumber: "4111111111111111", Valid: true, Brand: cardDomain.BrandVisa, Audited: true},
			{Row: 3, CardNumber: "abc", Brand: cardDomain.BrandUnknown, Err: cardDomain.ErrNonDigitCardNumber},
		}
		mockBatch.On("ValidateReader", mock.Anything, mock.Anything, false).Return(results, nil).Once()

		c, w := createTestContext(
			http.MethodPost,
			"/v1/cards/validate-batch?audit=false",
			strings.NewReader("card_number\n4111111111111111\nabc\n"),
		)

		handler.ValidateBatchHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response dto.ValidateBatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, dto.BatchSummaryResponse{Total: 2, Valid: 1, Invalid: 0, Errors: 1}, response.Summary)
		require.Len(t, response.Results, 2)
		assert.Equal(t, 2, response.Results[0].Row)
		assert.NotEmpty(t, response.Results[1].Error)
		mockBatch.AssertExpectations(t)
	})

	t.Run("Error_MissingColumn", func(t *testing.T) {
		handler, _, mockBatch := setupTestCardHandler(t, true)

		mockBatch.On("ValidateReader", mock.Anything, mock.Anything, true).
			Return(nil, cardDomain.ErrMissingCardNumberColumn).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate-batch", strings.NewReader("number\n1\n"))

		handler.ValidateBatchHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidAuditParameter", func(t *testing.T) {
		handler, _, mockBatch := setupTestCardHandler(t, true)

		c, w := createTestContext(http.MethodPost, "/v1/cards/validate-batch?audit=perhaps", strings.NewReader(""))

		handler.ValidateBatchHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockBatch.AssertNotCalled(t, "ValidateReader", mock.Anything, mock.Anything, mock.Anything)
	})
}
