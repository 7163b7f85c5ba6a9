// Package mocks provides mock implementations of the card use case interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
	cardDomain "github.com/allisson/cardcheck/internal/card/domain"
)

// MockAuditRecorder is a mock implementation of AuditRecorder.
type MockAuditRecorder struct {
	mock.Mock
}

// Record mocks the Record method of AuditRecorder.
func (m *MockAuditRecorder) Record(
	ctx context.Context,
	cardNumber string,
	valid bool,
	cardType string,
) (*auditDomain.Record, error) {
	args := m.Called(ctx, cardNumber, valid, cardType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auditDomain.Record), args.Error(1)
}

// MockValidationUseCase is a mock implementation of ValidationUseCase.
type MockValidationUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method of ValidationUseCase.
func (m *MockValidationUseCase) Validate(
	ctx context.Context,
	cardNumber string,
	audit bool,
) (*cardDomain.Outcome, error) {
	args := m.Called(ctx, cardNumber, audit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cardDomain.Outcome), args.Error(1)
}

// MockBatchUseCase is a mock implementation of BatchUseCase.
type MockBatchUseCase struct {
	mock.Mock
}

// ValidateFile mocks the ValidateFile method of BatchUseCase.
func (m *MockBatchUseCase) ValidateFile(
	ctx context.Context,
	path string,
	audit bool,
) ([]*cardDomain.BatchResult, error) {
	args := m.Called(ctx, path, audit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cardDomain.BatchResult), args.Error(1)
}

// ValidateReader mocks the ValidateReader method of BatchUseCase.
func (m *MockBatchUseCase) ValidateReader(
	ctx context.Context,
	r io.Reader,
	audit bool,
) ([]*cardDomain.BatchResult, error) {
	args := m.Called(ctx, r, audit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cardDomain.BatchResult), args.Error(1)
}
