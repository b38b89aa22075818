package domain

import "github.com/shopspring/decimal"

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "pending"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
)

// ValidStatuses lists every recognized invoice status.
var ValidStatuses = []InvoiceStatus{StatusPending, StatusPaid, StatusCancelled}

// Valid reports whether s is one of the recognized statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// DiscountType selects how an invoice discount is derived from its value.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
	DiscountPreset     DiscountType = "preset"
)

// Valid reports whether t is one of the recognized discount types.
func (t DiscountType) Valid() bool {
	switch t {
	case DiscountNone, DiscountPercentage, DiscountFixed, DiscountPreset:
		return true
	}
	return false
}

// DiscountPresets maps preset identifiers to their percentage rates.
var DiscountPresets = map[string]decimal.Decimal{
	"small":  decimal.NewFromInt(5),
	"medium": decimal.NewFromInt(10),
	"large":  decimal.NewFromInt(25),
}

// UserRole defines the role of an authenticated user.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// Privileged reports whether the role unlocks admin-only controls.
func (r UserRole) Privileged() bool {
	return r == RoleAdmin
}

// TaskSource identifies where a task originated.
type TaskSource string

const (
	TaskSourceManual TaskSource = "manual"
	TaskSourceGitHub TaskSource = "github"
)
