package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"techinvoice/internal/domain"
	"techinvoice/internal/port"
)

// CreateTaskInput is the DTO for manual task creation.
type CreateTaskInput struct {
	Title    string `json:"title" binding:"required"`
	Assignee string `json:"assignee"`
}

// UpdateTaskInput is the DTO for task updates; nil fields are untouched.
type UpdateTaskInput struct {
	Completed *bool   `json:"completed"`
	Assignee  *string `json:"assignee"`
}

// SyncResult reports the outcome of an issue-tracker sync.
type SyncResult struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
}

// TaskService manages the team task list and its issue-tracker sync.
type TaskService interface {
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Sync pulls open issues from the external tracker and imports the
	// ones not seen before, keyed by their stable external identifier.
	Sync(ctx context.Context) (*SyncResult, error)
}

type taskService struct {
	taskRepo port.TaskRepository
	issues   port.IssueSource
}

// NewTaskService creates a new TaskService implementation.
func NewTaskService(taskRepo port.TaskRepository, issues port.IssueSource) TaskService {
	return &taskService{taskRepo: taskRepo, issues: issues}
}

func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ValidationError("title", "must not be empty")
	}

	task := &domain.Task{
		Title:    title,
		Assignee: input.Assignee,
		Source:   domain.TaskSourceManual,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepo.List(ctx)
}

func (s *taskService) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) error {
	if input.Completed == nil && input.Assignee == nil {
		return domain.ValidationError("task", "nothing to update")
	}
	if input.Completed != nil {
		if err := s.taskRepo.SetCompleted(ctx, id, *input.Completed); err != nil {
			return err
		}
	}
	if input.Assignee != nil {
		if err := s.taskRepo.SetAssignee(ctx, id, *input.Assignee); err != nil {
			return err
		}
	}
	return nil
}

func (s *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.taskRepo.Delete(ctx, id)
}

func (s *taskService) Sync(ctx context.Context) (*SyncResult, error) {
	issues, err := s.issues.ListOpenIssues(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.taskRepo.ExistingExternalIDs(ctx)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{Fetched: len(issues)}
	for _, issue := range issues {
		externalID := fmt.Sprintf("github-%d", issue.ID)
		if existing[externalID] {
			continue
		}

		task := &domain.Task{
			Title:      issue.Title,
			Source:     domain.TaskSourceGitHub,
			ExternalID: externalID,
		}
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return nil, err
		}
		result.Imported++
	}
	return result, nil
}
