package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"techinvoice/internal/domain"
)

// MockIssueSource is a mock implementation of port.IssueSource.
type MockIssueSource struct {
	mock.Mock
}

func (m *MockIssueSource) ListOpenIssues(ctx context.Context) ([]domain.ExternalIssue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExternalIssue), args.Error(1)
}
