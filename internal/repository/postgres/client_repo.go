package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"techinvoice/internal/domain"
	"techinvoice/internal/port"
)

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, client *domain.Client) error {
	client.ID = uuid.New()
	client.CreatedAt = time.Now().UTC()

	query := `INSERT INTO clients (id, name, company, address, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		client.ID, client.Name, client.Company, client.Address,
		client.Email, client.Phone, client.CreatedAt)
	if err != nil {
		return fmt.Errorf("clientRepo.Create: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.SelectContext(ctx, &clients, "SELECT * FROM clients ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("clientRepo.List: %w", err)
	}
	return clients, nil
}

// Search ranks name matches ahead of email-only matches and returns every
// match so the caller can disambiguate.
func (r *clientRepo) Search(ctx context.Context, query string) ([]domain.Client, error) {
	pattern := "%" + query + "%"

	var clients []domain.Client
	err := r.db.SelectContext(ctx, &clients,
		`SELECT * FROM clients
		 WHERE name ILIKE $1 OR email ILIKE $1
		 ORDER BY (name ILIKE $1) DESC, name ASC`,
		pattern)
	if err != nil {
		return nil, fmt.Errorf("clientRepo.Search: %w", err)
	}
	return clients, nil
}
