package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"techinvoice/internal/domain"
)

// InvoiceRepository persists invoices and their line items.
type InvoiceRepository interface {
	// Create inserts the invoice and its items in one transaction. Item
	// positions follow slice order.
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	// GetResolved loads the invoice with its items and client denormalized.
	GetResolved(ctx context.Context, id uuid.UUID) (*domain.ResolvedInvoice, error)
	// List returns a page of invoices, newest first, plus the total count
	// of rows matching the filter. An empty status matches every invoice.
	List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.Invoice, int, error)
	// ListByDateRange returns invoices created within [from, to), newest
	// first. Used by the dashboard aggregator.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error)
	// UpdateStatus is a single atomic update keyed by invoice ID; it
	// touches no other columns. Concurrent updates are last-write-wins.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error
}
