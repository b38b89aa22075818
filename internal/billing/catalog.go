package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"techinvoice/internal/domain"
)

func fixedPrice(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// catalog lists the predefined offerings a business can bill for. An
// offering with a nil price is quoted per engagement.
var catalog = []domain.CatalogOffering{
	{Name: "Basic Web Design", UnitPrice: fixedPrice(299)},
	{Name: "Standard Web Design", UnitPrice: fixedPrice(459)},
	{Name: "Premium Web Design", UnitPrice: fixedPrice(799)},
	{Name: "Enterprise Web Design", UnitPrice: nil},
	{Name: "Domain Registration", UnitPrice: fixedPrice(15)},
	{Name: "Web Hosting (Monthly)", UnitPrice: fixedPrice(20)},
	{Name: "Web Hosting (Yearly)", UnitPrice: fixedPrice(200)},
	{Name: "Basic Maintenance", UnitPrice: fixedPrice(50)},
	{Name: "Standard Maintenance", UnitPrice: fixedPrice(100)},
	{Name: "Premium Maintenance", UnitPrice: fixedPrice(200)},
}

// Offerings returns the predefined service catalog in display order.
// The returned slice is a copy; callers may not mutate the catalog.
func Offerings() []domain.CatalogOffering {
	out := make([]domain.CatalogOffering, len(catalog))
	copy(out, catalog)
	return out
}

// LookupOffering finds a catalog offering by name, ignoring case and
// surrounding whitespace.
func LookupOffering(name string) (domain.CatalogOffering, bool) {
	name = strings.TrimSpace(name)
	for _, o := range catalog {
		if strings.EqualFold(o.Name, name) {
			return o, true
		}
	}
	return domain.CatalogOffering{}, false
}
