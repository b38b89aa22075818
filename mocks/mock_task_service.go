package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"techinvoice/internal/domain"
	"techinvoice/internal/service"
)

// MockTaskService is a mock implementation of service.TaskService.
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) Create(ctx context.Context, input service.CreateTaskInput) (*domain.Task, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id uuid.UUID, input service.UpdateTaskInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockTaskService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskService) Sync(ctx context.Context) (*service.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncResult), args.Error(1)
}
