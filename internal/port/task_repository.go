package port

import (
	"context"

	"github.com/google/uuid"

	"techinvoice/internal/domain"
)

// TaskRepository persists the team task list.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	List(ctx context.Context) ([]domain.Task, error)
	// ExistingExternalIDs returns the external identifiers already
	// imported, so a sync never creates duplicates.
	ExistingExternalIDs(ctx context.Context) (map[string]bool, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	SetAssignee(ctx context.Context, id uuid.UUID, assignee string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
