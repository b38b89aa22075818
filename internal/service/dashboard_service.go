package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"techinvoice/internal/port"
	"techinvoice/internal/reporting"
)

// DashboardService produces the dashboard summary for a date range.
type DashboardService interface {
	Summary(ctx context.Context, from, to time.Time) (*reporting.Summary, error)
}

type dashboardService struct {
	invoiceRepo port.InvoiceRepository
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(invoiceRepo port.InvoiceRepository) DashboardService {
	return &dashboardService{invoiceRepo: invoiceRepo}
}

// Summary aggregates the invoices created in [from, to) and compares them
// against the window of the same length immediately before it. The prior
// period is fetched, not assumed.
func (s *dashboardService) Summary(ctx context.Context, from, to time.Time) (*reporting.Summary, error) {
	current, err := s.invoiceRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	priorFrom := from.Add(-to.Sub(from))
	previous, err := s.invoiceRepo.ListByDateRange(ctx, priorFrom, from)
	if err != nil {
		return nil, err
	}

	prior := reporting.PriorPeriod{
		TotalRevenue: decimal.Zero,
		SalesCount:   len(previous),
	}
	for _, inv := range previous {
		prior.TotalRevenue = prior.TotalRevenue.Add(inv.Total)
	}

	summary := reporting.Aggregate(current, prior)
	return &summary, nil
}
