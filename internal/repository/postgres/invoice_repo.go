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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

const insertInvoiceQuery = `INSERT INTO invoices
	(id, client_id, created_at, due_date, discount_type, discount_value,
	 tax_rate, notes, status, subtotal, discount, tax, total)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const insertItemQuery = `INSERT INTO invoice_items
	(id, invoice_id, position, description, quantity, unit_price, is_free, total)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create writes the invoice row and its line items in one transaction so a
// partial invoice can never be observed.
func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, insertInvoiceQuery,
		invoice.ID, invoice.ClientID, invoice.CreatedAt, invoice.DueDate,
		invoice.DiscountType, invoice.DiscountValue, invoice.TaxRate,
		invoice.Notes, invoice.Status, invoice.Subtotal, invoice.Discount,
		invoice.Tax, invoice.Total)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create invoice: %w", err)
	}

	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.ID = uuid.New()
		item.InvoiceID = invoice.ID
		item.Position = i

		_, err = tx.ExecContext(ctx, insertItemQuery,
			item.ID, item.InvoiceID, item.Position, item.Description,
			item.Quantity, item.UnitPrice, item.IsFree, item.Total)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	if err := r.loadItems(ctx, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) GetResolved(ctx context.Context, id uuid.UUID) (*domain.ResolvedInvoice, error) {
	invoice, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var client domain.Client
	err = r.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE id = $1", invoice.ClientID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetResolved client: %w", err)
	}

	return &domain.ResolvedInvoice{Invoice: *invoice, Client: client}, nil
}

func (r *invoiceRepo) List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.Invoice, int, error) {
	countQuery := "SELECT COUNT(*) FROM invoices"
	listQuery := "SELECT * FROM invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2"
	countArgs := []any{}
	listArgs := []any{limit, offset}
	if status != "" {
		countQuery = "SELECT COUNT(*) FROM invoices WHERE status = $1"
		listQuery = "SELECT * FROM invoices WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3"
		countArgs = []any{status}
		listArgs = []any{status, limit, offset}
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, listQuery, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

// ListByDateRange returns invoices created in [from, to), newest first,
// the order the dashboard aggregator expects.
func (r *invoiceRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices
		 WHERE created_at >= $1 AND created_at < $2
		 ORDER BY created_at DESC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByDateRange: %w", err)
	}
	return invoices, nil
}

// UpdateStatus touches only the status column. Last write wins.
func (r *invoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) loadItems(ctx context.Context, invoice *domain.Invoice) error {
	err := r.db.SelectContext(ctx, &invoice.Items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY position ASC",
		invoice.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.loadItems: %w", err)
	}
	return nil
}
