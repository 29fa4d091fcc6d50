// Package mocks provides testify mocks for the password use case and its collaborators.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/passgen/internal/passwords/domain"
)

// MockPasswordUseCase is a mock implementation of PasswordUseCase for testing.
type MockPasswordUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of PasswordUseCase.
func (m *MockPasswordUseCase) Generate(
	ctx context.Context,
	request domain.GenerationRequest,
) (*domain.GenerationResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}

// GenerateBatch mocks the GenerateBatch method of PasswordUseCase.
func (m *MockPasswordUseCase) GenerateBatch(
	ctx context.Context,
	request domain.GenerationRequest,
	count int,
) ([]*domain.GenerationResult, error) {
	args := m.Called(ctx, request, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GenerationResult), args.Error(1)
}

// Score mocks the Score method of PasswordUseCase.
func (m *MockPasswordUseCase) Score(ctx context.Context, password string) *domain.StrengthReport {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.StrengthReport)
}

// MockHistorySink is a mock implementation of HistorySink for testing.
type MockHistorySink struct {
	mock.Mock
}

// Append mocks the Append method of HistorySink.
func (m *MockHistorySink) Append(ctx context.Context, password string) error {
	args := m.Called(ctx, password)
	return args.Error(0)
}
