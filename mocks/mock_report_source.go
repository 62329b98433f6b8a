package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"volumetrico/internal/port"
)

// MockReportSource is a mock implementation of port.ReportSource.
type MockReportSource struct {
	mock.Mock
}

func (m *MockReportSource) Download(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportSource) List(ctx context.Context, prefix string) ([]port.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.ObjectInfo), args.Error(1)
}
