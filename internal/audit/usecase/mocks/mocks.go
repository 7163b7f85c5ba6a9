// Package mocks provides mock implementations of the audit use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	auditDomain "github.com/allisson/cardcheck/internal/audit/domain"
)

// MockRecordRepository is a mock implementation of RecordRepository.
type MockRecordRepository struct {
	mock.Mock
}

// Append mocks the Append method of RecordRepository.
func (m *MockRecordRepository) Append(ctx context.Context, record *auditDomain.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// List mocks the List method of RecordRepository.
func (m *MockRecordRepository) List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.Record), args.Error(1)
}

// MockAuditUseCase is a mock implementation of AuditUseCase.
type MockAuditUseCase struct {
	mock.Mock
}

// Record mocks the Record method of AuditUseCase.
func (m *MockAuditUseCase) Record(
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

// List mocks the List method of AuditUseCase.
func (m *MockAuditUseCase) List(ctx context.Context, offset, limit int) ([]*auditDomain.Record, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*auditDomain.Record), args.Error(1)
}
