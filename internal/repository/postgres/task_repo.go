package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"techinvoice/internal/domain"
	"techinvoice/internal/port"
)

type taskRepo struct {
	db *sqlx.DB
}

// NewTaskRepo creates a new PostgreSQL-backed TaskRepository.
func NewTaskRepo(db *sqlx.DB) port.TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	task.ID = uuid.New()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO tasks (id, title, completed, assignee, source, external_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Completed, task.Assignee,
		task.Source, task.ExternalID, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("taskRepo.Create: %w", err)
	}
	return nil
}

func (r *taskRepo) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	err := r.db.SelectContext(ctx, &tasks, "SELECT * FROM tasks ORDER BY created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("taskRepo.List: %w", err)
	}
	return tasks, nil
}

func (r *taskRepo) ExistingExternalIDs(ctx context.Context) (map[string]bool, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		"SELECT external_id FROM tasks WHERE external_id <> ''")
	if err != nil {
		return nil, fmt.Errorf("taskRepo.ExistingExternalIDs: %w", err)
	}

	existing := make(map[string]bool, len(ids))
	for _, id := range ids {
		existing[id] = true
	}
	return existing, nil
}

func (r *taskRepo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET completed = $1 WHERE id = $2", completed, id)
	if err != nil {
		return fmt.Errorf("taskRepo.SetCompleted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepo) SetAssignee(ctx context.Context, id uuid.UUID, assignee string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET assignee = $1 WHERE id = $2", assignee, id)
	if err != nil {
		return fmt.Errorf("taskRepo.SetAssignee: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("taskRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
