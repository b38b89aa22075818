package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"techinvoice/internal/domain"
	"techinvoice/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Create(ctx context.Context, input service.CreateInvoiceInput) (*domain.Invoice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetResolved(ctx context.Context, id uuid.UUID) (*domain.ResolvedInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedInvoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, input service.UpdateStatusInput) (*domain.Invoice, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
