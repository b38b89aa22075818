package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"techinvoice/internal/domain"
)

// MockTaskRepo is a mock implementation of port.TaskRepository.
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepo) ExistingExternalIDs(ctx context.Context) (map[string]bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockTaskRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	args := m.Called(ctx, id, completed)
	return args.Error(0)
}

func (m *MockTaskRepo) SetAssignee(ctx context.Context, id uuid.UUID, assignee string) error {
	args := m.Called(ctx, id, assignee)
	return args.Error(0)
}

func (m *MockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
