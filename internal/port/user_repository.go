package port

import (
	"context"

	"github.com/google/uuid"

	"techinvoice/internal/domain"
)

// UserRepository persists authenticated identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
