package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"techinvoice/internal/reporting"
)

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, from, to time.Time) (*reporting.Summary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reporting.Summary), args.Error(1)
}
