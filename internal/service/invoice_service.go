package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"techinvoice/internal/billing"
	"techinvoice/internal/config"
	"techinvoice/internal/domain"
	"techinvoice/internal/port"
)

// InvoiceItemInput is one line item on a creation request.
type InvoiceItemInput struct {
	Description string          `json:"description" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IsFree      bool            `json:"is_free"`
}

// CreateInvoiceInput is the DTO for invoice creation. Exactly one of
// ClientID or NewClient must be provided; NewClient creates the client
// inline before the invoice is written.
type CreateInvoiceInput struct {
	ClientID      *uuid.UUID         `json:"client_id"`
	NewClient     *CreateClientInput `json:"new_client"`
	InvoiceDate   time.Time          `json:"invoice_date"`
	DueDate       time.Time          `json:"due_date"`
	Items         []InvoiceItemInput `json:"items" binding:"required"`
	DiscountType  string             `json:"discount_type"`
	DiscountValue decimal.Decimal    `json:"discount_value"`
	// DiscountPreset selects a named preset; only read when DiscountType
	// is "preset".
	DiscountPreset string           `json:"discount_preset"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	Notes          string           `json:"notes"`
}

// UpdateStatusInput is the DTO for status transitions.
type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// InvoiceService creates invoices, transitions their status, and resolves
// them for display and export.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetResolved(ctx context.Context, id uuid.UUID) (*domain.ResolvedInvoice, error)
	List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.Invoice, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*domain.Invoice, error)
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	clientRepo  port.ClientRepository
	cfg         config.BillingConfig
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	clientRepo port.ClientRepository,
	cfg config.BillingConfig,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		cfg:         cfg,
	}
}

// Create validates the request, derives the money fields once, and
// persists the invoice with its items. Derived fields are never
// recomputed after this point.
func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	items, err := validateItems(input.Items)
	if err != nil {
		return nil, err
	}

	dt, discountValue, err := s.resolveDiscount(input)
	if err != nil {
		return nil, err
	}

	taxRate := decimal.NewFromFloat(s.cfg.DefaultTaxRate)
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ValidationError("tax_rate", "must be between 0 and 100")
	}

	clientID, err := s.resolveClient(ctx, input)
	if err != nil {
		return nil, err
	}

	totals, err := billing.Calculate(items, dt, discountValue, taxRate,
		billing.Policy{AllowNegativeBase: s.cfg.AllowNegativeBase})
	if err != nil {
		return nil, err
	}

	createdAt := input.InvoiceDate
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	dueDate := input.DueDate
	if dueDate.IsZero() {
		// Matches the creation form default of net-15.
		dueDate = createdAt.AddDate(0, 0, 15)
	}

	invoice := &domain.Invoice{
		ClientID:      clientID,
		CreatedAt:     createdAt,
		DueDate:       dueDate,
		DiscountType:  dt,
		DiscountValue: discountValue,
		TaxRate:       taxRate,
		Notes:         input.Notes,
		Status:        billing.InitialStatus(),
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Items:         items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) GetResolved(ctx context.Context, id uuid.UUID) (*domain.ResolvedInvoice, error) {
	return s.invoiceRepo.GetResolved(ctx, id)
}

// List returns a page of invoices, optionally narrowed to one status.
// An empty status means all invoices.
func (s *invoiceService) List(ctx context.Context, status domain.InvoiceStatus, offset, limit int) ([]domain.Invoice, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}
	return s.invoiceRepo.List(ctx, status, offset, limit)
}

// UpdateStatus runs the transition check and persists it as one atomic
// update; no other invoice field changes as a side effect.
func (s *invoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	to := domain.InvoiceStatus(input.Status)
	if err := billing.Transition(invoice.Status, to); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}

	invoice.Status = to
	return invoice, nil
}

func (s *invoiceService) resolveClient(ctx context.Context, input CreateInvoiceInput) (uuid.UUID, error) {
	if input.NewClient != nil {
		client := &domain.Client{
			Name:    strings.TrimSpace(input.NewClient.Name),
			Company: input.NewClient.Company,
			Address: input.NewClient.Address,
			Email:   strings.TrimSpace(input.NewClient.Email),
			Phone:   input.NewClient.Phone,
		}
		if client.Name == "" {
			return uuid.Nil, domain.ValidationError("new_client.name", "must not be empty")
		}
		if err := s.clientRepo.Create(ctx, client); err != nil {
			return uuid.Nil, err
		}
		return client.ID, nil
	}

	if input.ClientID == nil || *input.ClientID == uuid.Nil {
		return uuid.Nil, domain.ValidationError("client_id", "a client reference or inline client is required")
	}

	if _, err := s.clientRepo.GetByID(ctx, *input.ClientID); err != nil {
		return uuid.Nil, err
	}
	return *input.ClientID, nil
}

func (s *invoiceService) resolveDiscount(input CreateInvoiceInput) (domain.DiscountType, decimal.Decimal, error) {
	dt := domain.DiscountType(input.DiscountType)
	if input.DiscountType == "" {
		dt = domain.DiscountNone
	}
	if !dt.Valid() {
		return "", decimal.Zero, domain.ValidationError("discount_type", input.DiscountType)
	}

	value := input.DiscountValue
	if dt == domain.DiscountPreset {
		rate, err := billing.ResolvePreset(input.DiscountPreset)
		if err != nil {
			return "", decimal.Zero, err
		}
		value = rate
	}

	if value.IsNegative() {
		return "", decimal.Zero, domain.ValidationError("discount_value", "must not be negative")
	}
	if (dt == domain.DiscountPercentage || dt == domain.DiscountPreset) && value.GreaterThan(decimal.NewFromInt(100)) {
		return "", decimal.Zero, domain.ValidationError("discount_value", "percentage must not exceed 100")
	}
	return dt, value, nil
}

func validateItems(inputs []InvoiceItemInput) ([]domain.InvoiceItem, error) {
	if len(inputs) == 0 {
		return nil, domain.ValidationError("items", "at least one line item is required")
	}

	items := make([]domain.InvoiceItem, 0, len(inputs))
	for i, in := range inputs {
		if strings.TrimSpace(in.Description) == "" {
			return nil, domain.ValidationError(fmt.Sprintf("items[%d].description", i), "must not be empty")
		}
		if in.Quantity <= 0 {
			return nil, domain.ValidationError(fmt.Sprintf("items[%d].quantity", i), "must be a positive integer")
		}
		if in.UnitPrice.IsNegative() {
			return nil, domain.ValidationError(fmt.Sprintf("items[%d].unit_price", i), "must not be negative")
		}

		item := domain.InvoiceItem{
			Description: strings.TrimSpace(in.Description),
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			IsFree:      in.IsFree,
		}
		// An omitted price on a catalog offering fills in from the catalog.
		if item.UnitPrice.IsZero() && !item.IsFree {
			if offering, ok := billing.LookupOffering(item.Description); ok && offering.UnitPrice != nil {
				item.UnitPrice = *offering.UnitPrice
			}
		}
		item.Total = billing.ItemTotal(item)
		items = append(items, item)
	}
	return items, nil
}
