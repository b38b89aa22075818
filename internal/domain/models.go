package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client represents a billable customer. Invoices hold a non-owning
// reference to a client by ID.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Company   string    `db:"company" json:"company"`
	Address   string    `db:"address" json:"address"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CatalogOffering is a predefined service that can be picked when
// composing an invoice. A nil UnitPrice means the offering is priced
// per engagement and the caller must supply a price.
type CatalogOffering struct {
	Name      string           `json:"name"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// InvoiceItem is one billable line on an invoice. Position preserves
// insertion order for display and export.
type InvoiceItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	Position    int             `db:"position" json:"position"`
	Description string          `db:"description" json:"description"`
	Quantity    int             `db:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price" json:"unit_price"`
	IsFree      bool            `db:"is_free" json:"is_free"`
	Total       decimal.Decimal `db:"total" json:"total"`
}

// Invoice is a billable record for one client. The four monetary fields
// are computed once at creation and persisted; they are never recomputed
// from line items on read.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	DueDate       time.Time       `db:"due_date" json:"due_date"`
	DiscountType  DiscountType    `db:"discount_type" json:"discount_type"`
	DiscountValue decimal.Decimal `db:"discount_value" json:"discount_value"`
	TaxRate       decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	Notes         string          `db:"notes" json:"notes"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	Tax           decimal.Decimal `db:"tax" json:"tax"`
	Total         decimal.Decimal `db:"total" json:"total"`

	Items []InvoiceItem `db:"-" json:"items,omitempty"`
}

// ResolvedInvoice is an invoice with its client denormalized, ready for
// display or spreadsheet export.
type ResolvedInvoice struct {
	Invoice
	Client Client `json:"client"`
}

// User represents an authenticated identity.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Task is one entry in the team task list. Tasks imported from an
// external issue tracker carry a stable ExternalID so the same issue is
// never imported twice.
type Task struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Completed  bool       `db:"completed" json:"completed"`
	Assignee   string     `db:"assignee" json:"assignee"`
	Source     TaskSource `db:"source" json:"source"`
	ExternalID string     `db:"external_id" json:"external_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// ExternalIssue is an issue fetched from the external tracker.
type ExternalIssue struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
}
