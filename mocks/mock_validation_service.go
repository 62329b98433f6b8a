package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"volumetrico/internal/service"
)

// MockValidationService is a mock implementation of service.ValidationService.
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) Validate(ctx context.Context, input service.ValidateInput) (*service.ValidationResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ValidationResult), args.Error(1)
}

func (m *MockValidationService) ValidateObject(ctx context.Context, key string, checkFileName *bool) (*service.ValidationResult, error) {
	args := m.Called(ctx, key, checkFileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ValidationResult), args.Error(1)
}
