package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// MockClaimService is a mock implementation of service.ClaimService.
type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) ProcessText(ctx context.Context, documentName, text string) *domain.ProcessResult {
	args := m.Called(ctx, documentName, text)
	return args.Get(0).(*domain.ProcessResult)
}

func (m *MockClaimService) ProcessAndStore(ctx context.Context, documentName, text string) (*domain.Claim, *domain.ProcessResult, error) {
	args := m.Called(ctx, documentName, text)
	var claim *domain.Claim
	if args.Get(0) != nil {
		claim = args.Get(0).(*domain.Claim)
	}
	var result *domain.ProcessResult
	if args.Get(1) != nil {
		result = args.Get(1).(*domain.ProcessResult)
	}
	return claim, result, args.Error(2)
}

func (m *MockClaimService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claim), args.Error(1)
}

func (m *MockClaimService) List(ctx context.Context, route domain.Route, offset, limit int) ([]domain.Claim, int, error) {
	args := m.Called(ctx, route, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Claim), args.Int(1), args.Error(2)
}

func (m *MockClaimService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
