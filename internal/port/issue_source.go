package port

import (
	"context"

	"techinvoice/internal/domain"
)

// IssueSource fetches issues from an external tracker.
type IssueSource interface {
	ListOpenIssues(ctx context.Context) ([]domain.ExternalIssue, error)
}
