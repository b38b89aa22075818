package port

import (
	"context"

	"github.com/google/uuid"

	"techinvoice/internal/domain"
)

// ClientRepository persists client contact records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	// Search performs a case-insensitive substring match over name and
	// email, returning all matches with name matches ranked first.
	Search(ctx context.Context, query string) ([]domain.Client, error)
}
