package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"volumetrico/internal/domain"
	"volumetrico/internal/validator"
)

// MockRunner is a mock implementation of service.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, doc *validator.Document) (*domain.ValidationReport, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationReport), args.Error(1)
}
