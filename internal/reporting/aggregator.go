// Package reporting reduces a date-bounded invoice collection into the
// summary metrics shown on the dashboard. Aggregation is pure; fetching
// and date-bounding belong to the caller.
package reporting

import (
	"github.com/shopspring/decimal"

	"techinvoice/internal/domain"
)

// RecentSalesLimit is how many invoices the summary surfaces as recent.
const RecentSalesLimit = 5

// MonthlyRevenue is one month's summed invoice total. Key is the short
// month name of the invoice creation date ("Jan", "Feb", ...).
type MonthlyRevenue struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// StatusRevenue is the summed invoice total for one status value.
type StatusRevenue struct {
	Status domain.InvoiceStatus `json:"status"`
	Total  decimal.Decimal      `json:"total"`
}

// PriorPeriod carries the previous period's aggregate so period-over-period
// change is computed from real data supplied by the caller.
type PriorPeriod struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	SalesCount   int             `json:"sales_count"`
}

// Summary is the transient dashboard read-model. It is never persisted.
type Summary struct {
	TotalRevenue    decimal.Decimal  `json:"total_revenue"`
	SalesCount      int              `json:"sales_count"`
	MonthlyRevenue  []MonthlyRevenue `json:"monthly_revenue"`
	RevenueByStatus []StatusRevenue  `json:"revenue_by_status"`
	RecentSales     []domain.Invoice `json:"recent_sales"`
	RevenueChange   decimal.Decimal  `json:"revenue_change"`
	SalesChange     decimal.Decimal  `json:"sales_change"`
}

// Aggregate reduces invoices into a Summary. The input is expected to be
// pre-sorted by creation date descending; the aggregator performs no
// sorting and takes the first RecentSalesLimit entries as recent sales.
// Month and status groups appear in first-occurrence order with no
// zero-filling for absent months.
func Aggregate(invoices []domain.Invoice, prior PriorPeriod) Summary {
	total := decimal.Zero

	monthIndex := map[string]int{}
	monthly := []MonthlyRevenue{}
	statusIndex := map[domain.InvoiceStatus]int{}
	byStatus := []StatusRevenue{}

	for _, inv := range invoices {
		total = total.Add(inv.Total)

		month := inv.CreatedAt.Format("Jan")
		if i, ok := monthIndex[month]; ok {
			monthly[i].Revenue = monthly[i].Revenue.Add(inv.Total)
		} else {
			monthIndex[month] = len(monthly)
			monthly = append(monthly, MonthlyRevenue{Month: month, Revenue: inv.Total})
		}

		if i, ok := statusIndex[inv.Status]; ok {
			byStatus[i].Total = byStatus[i].Total.Add(inv.Total)
		} else {
			statusIndex[inv.Status] = len(byStatus)
			byStatus = append(byStatus, StatusRevenue{Status: inv.Status, Total: inv.Total})
		}
	}

	recent := invoices
	if len(recent) > RecentSalesLimit {
		recent = recent[:RecentSalesLimit]
	}

	return Summary{
		TotalRevenue:    total,
		SalesCount:      len(invoices),
		MonthlyRevenue:  monthly,
		RevenueByStatus: byStatus,
		RecentSales:     recent,
		RevenueChange:   PercentChange(total, prior.TotalRevenue),
		SalesChange: PercentChange(
			decimal.NewFromInt(int64(len(invoices))),
			decimal.NewFromInt(int64(prior.SalesCount)),
		),
	}
}

// PercentChange returns (current-prior)/prior*100, or zero when the prior
// value is zero.
func PercentChange(current, prior decimal.Decimal) decimal.Decimal {
	if prior.IsZero() {
		return decimal.Zero
	}
	return current.Sub(prior).Div(prior).Mul(decimal.NewFromInt(100))
}
