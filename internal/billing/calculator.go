// Package billing computes invoice money fields. Everything here is pure:
// no I/O, no clock, identical output for identical input. All arithmetic
// stays in decimal form; rounding to two places happens only when a value
// is formatted for display or export.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"techinvoice/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Policy controls edge-case behavior of the calculator.
type Policy struct {
	// AllowNegativeBase permits a fixed discount larger than the subtotal,
	// producing a negative pre-tax base. When false (the default) fixed
	// discounts are clamped to [0, subtotal].
	AllowNegativeBase bool
}

// Totals holds the four derived monetary fields of an invoice.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ItemTotal returns the line total for a single item: zero when the item
// is marked free of charge, quantity times unit price otherwise.
func ItemTotal(item domain.InvoiceItem) decimal.Decimal {
	if item.IsFree {
		return decimal.Zero
	}
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal sums the item totals. The result does not depend on item order.
func Subtotal(items []domain.InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(ItemTotal(item))
	}
	return sum
}

// DiscountAmount derives the discount from the subtotal and the discount
// policy. Preset identifiers resolve to a fixed percentage and are then
// applied exactly like a percentage discount.
func DiscountAmount(subtotal decimal.Decimal, dt domain.DiscountType, value decimal.Decimal, p Policy) (decimal.Decimal, error) {
	switch dt {
	case domain.DiscountNone:
		return decimal.Zero, nil
	case domain.DiscountPercentage:
		return subtotal.Mul(value).Div(hundred), nil
	case domain.DiscountFixed:
		if p.AllowNegativeBase {
			return value, nil
		}
		return clamp(value, subtotal), nil
	case domain.DiscountPreset:
		// Preset values are identified by name; the numeric value carries
		// no meaning for this type and is resolved via ResolvePreset.
		return decimal.Zero, fmt.Errorf("%w: preset discounts must be resolved before calculation", domain.ErrUnknownPreset)
	default:
		return decimal.Zero, domain.ValidationError("discount_type", string(dt))
	}
}

// ResolvePreset maps a preset identifier to its percentage rate.
func ResolvePreset(id string) (decimal.Decimal, error) {
	rate, ok := domain.DiscountPresets[id]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownPreset, id)
	}
	return rate, nil
}

// Calculate derives subtotal, discount, tax, and total for an invoice.
// Tax is computed on the post-discount base, never on the raw subtotal.
// Validation of quantities, prices, and rates happens at the boundary;
// the calculator assumes well-formed input.
func Calculate(items []domain.InvoiceItem, dt domain.DiscountType, discountValue decimal.Decimal, taxRate decimal.Decimal, p Policy) (Totals, error) {
	if dt == domain.DiscountPreset {
		// Callers resolve presets by name into a percentage before reaching
		// here; Calculate accepts the resolved rate.
		dt = domain.DiscountPercentage
	}

	subtotal := Subtotal(items)
	discount, err := DiscountAmount(subtotal, dt, discountValue, p)
	if err != nil {
		return Totals{}, err
	}

	base := subtotal.Sub(discount)
	tax := base.Mul(taxRate).Div(hundred)

	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    base.Add(tax),
	}, nil
}

func clamp(v, max decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(max) {
		return max
	}
	return v
}
