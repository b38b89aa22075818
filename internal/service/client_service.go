package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"techinvoice/internal/domain"
	"techinvoice/internal/port"
)

// CreateClientInput is the DTO for client creation.
type CreateClientInput struct {
	Name    string `json:"name" binding:"required"`
	Company string `json:"company"`
	Address string `json:"address"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
}

// ClientService manages the client registry.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	// Search matches name and email case-insensitively and returns all
	// matches ranked; callers pick, never the service.
	Search(ctx context.Context, query string) ([]domain.Client, error)
}

type clientService struct {
	clientRepo port.ClientRepository
}

// NewClientService creates a new ClientService implementation.
func NewClientService(clientRepo port.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ValidationError("name", "must not be empty")
	}

	client := &domain.Client{
		Name:    strings.TrimSpace(input.Name),
		Company: input.Company,
		Address: input.Address,
		Email:   strings.TrimSpace(input.Email),
		Phone:   input.Phone,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *clientService) Search(ctx context.Context, query string) ([]domain.Client, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Client{}, nil
	}
	return s.clientRepo.Search(ctx, query)
}
