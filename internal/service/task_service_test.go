package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"techinvoice/internal/domain"
	"techinvoice/internal/service"
	"techinvoice/mocks"
)

func TestTaskService_Create_Manual(t *testing.T) {
	taskRepo := new(mocks.MockTaskRepo)
	svc := service.NewTaskService(taskRepo, new(mocks.MockIssueSource))

	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)

	task, err := svc.Create(context.Background(), service.CreateTaskInput{Title: "  Follow up with Acme  ", Assignee: "dana"})

	assert.NoError(t, err)
	assert.Equal(t, "Follow up with Acme", task.Title)
	assert.Equal(t, "dana", task.Assignee)
	assert.Equal(t, domain.TaskSourceManual, task.Source)
	assert.Empty(t, task.ExternalID)
}

func TestTaskService_Create_EmptyTitle(t *testing.T) {
	svc := service.NewTaskService(new(mocks.MockTaskRepo), new(mocks.MockIssueSource))

	_, err := svc.Create(context.Background(), service.CreateTaskInput{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskService_Update_NothingToUpdate(t *testing.T) {
	svc := service.NewTaskService(new(mocks.MockTaskRepo), new(mocks.MockIssueSource))

	err := svc.Update(context.Background(), uuid.New(), service.UpdateTaskInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskService_Update_Completed(t *testing.T) {
	taskRepo := new(mocks.MockTaskRepo)
	svc := service.NewTaskService(taskRepo, new(mocks.MockIssueSource))

	id := uuid.New()
	completed := true
	taskRepo.On("SetCompleted", mock.Anything, id, true).Return(nil)

	err := svc.Update(context.Background(), id, service.UpdateTaskInput{Completed: &completed})

	assert.NoError(t, err)
	taskRepo.AssertExpectations(t)
	taskRepo.AssertNotCalled(t, "SetAssignee", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_Sync_ImportsOnlyNewIssues(t *testing.T) {
	taskRepo := new(mocks.MockTaskRepo)
	issues := new(mocks.MockIssueSource)
	svc := service.NewTaskService(taskRepo, issues)

	issues.On("ListOpenIssues", mock.Anything).Return([]domain.ExternalIssue{
		{ID: 101, Number: 1, Title: "Fix export footer", State: "open"},
		{ID: 102, Number: 2, Title: "Add client search", State: "open"},
		{ID: 103, Number: 3, Title: "Tax rounding", State: "open"},
	}, nil)
	taskRepo.On("ExistingExternalIDs", mock.Anything).Return(map[string]bool{"github-102": true}, nil)

	var created []*domain.Task
	taskRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*domain.Task))
		}).Return(nil)

	result, err := svc.Sync(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, created, 2)
	assert.Equal(t, "github-101", created[0].ExternalID)
	assert.Equal(t, domain.TaskSourceGitHub, created[0].Source)
	assert.Equal(t, "Fix export footer", created[0].Title)
	assert.Equal(t, "github-103", created[1].ExternalID)
}

func TestTaskService_Sync_Idempotent(t *testing.T) {
	taskRepo := new(mocks.MockTaskRepo)
	issues := new(mocks.MockIssueSource)
	svc := service.NewTaskService(taskRepo, issues)

	issues.On("ListOpenIssues", mock.Anything).Return([]domain.ExternalIssue{
		{ID: 101, Number: 1, Title: "Fix export footer", State: "open"},
	}, nil)
	taskRepo.On("ExistingExternalIDs", mock.Anything).Return(map[string]bool{"github-101": true}, nil)

	result, err := svc.Sync(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Fetched)
	assert.Equal(t, 0, result.Imported)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskService_Sync_SourceError(t *testing.T) {
	taskRepo := new(mocks.MockTaskRepo)
	issues := new(mocks.MockIssueSource)
	svc := service.NewTaskService(taskRepo, issues)

	issues.On("ListOpenIssues", mock.Anything).Return(nil, domain.ErrUnauthorized)

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	taskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
