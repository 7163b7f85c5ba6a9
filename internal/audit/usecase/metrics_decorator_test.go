package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	"github.com/allisson/cardcheck/internal/audit/usecase/mocks"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordValidation(ctx context.Context, brand string, valid bool) {
	m.Called(ctx, brand, valid)
}

func expectMetrics(m *mockBusinessMetrics, ctx context.Context, operation, status string) {
	m.On("RecordOperation", ctx, "audit", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "audit", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestAuditUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Record success", func(t *testing.T) {
		mockNext := &mocks.MockAuditUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuditUseCaseWithMetrics(mockNext, mockMetrics)

		record := &auditDomain.Record{CardHash: "abc"}
		mockNext.On("Record", ctx, "4111111111111111", true, "Visa").Return(record, nil).Once()
		expectMetrics(mockMetrics, ctx, "record_append", "success")

		res, err := uc.Record(ctx, "4111111111111111", true, "Visa")
		assert.NoError(t, err)
		assert.Equal(t, record, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Record error", func(t *testing.T) {
		mockNext := &mocks.MockAuditUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuditUseCaseWithMetrics(mockNext, mockMetrics)

		expectedErr := errors.New("error")
		mockNext.On("Record", ctx, "4111111111111111", false, "Visa").Return(nil, expectedErr).Once()
		expectMetrics(mockMetrics, ctx, "record_append", "error")

		res, err := uc.Record(ctx, "4111111111111111", false, "Visa")
		assert.Equal(t, expectedErr, err)
		assert.Nil(t, res)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("List success", func(t *testing.T) {
		mockNext := &mocks.MockAuditUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuditUseCaseWithMetrics(mockNext, mockMetrics)

		records := []*auditDomain.Record{{CardHash: "abc"}}
		mockNext.On("List", ctx, 0, 10).Return(records, nil).Once()
		expectMetrics(mockMetrics, ctx, "record_list", "success")

		res, err := uc.List(ctx, 0, 10)
		assert.NoError(t, err)
		assert.Equal(t, records, res)
		mockMetrics.AssertExpectations(t)
	})
}
