// Package github implements port.IssueSource against the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"techinvoice/internal/config"
	"techinvoice/internal/domain"
)

const apiBaseURL = "https://api.github.com"

// Client fetches repository issues. The token comes from runtime
// configuration and is attached to requests only; it must never be
// logged or echoed in errors.
type Client struct {
	owner    string
	repo     string
	token    string
	endpoint string
	client   *http.Client
}

// NewClient creates a GitHub issue client from config.
func NewClient(cfg *config.GitHubConfig) *Client {
	return newClient(cfg, apiBaseURL)
}

// NewClientWithEndpoint creates a client pointing at a custom API base URL (for testing).
func NewClientWithEndpoint(cfg *config.GitHubConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GitHubConfig, endpoint string) *Client {
	return &Client{
		owner:    cfg.Owner,
		repo:     cfg.Repo,
		token:    cfg.Token,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type issuePayload struct {
	ID          int64  `json:"id"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	State       string `json:"state"`
	PullRequest *struct {
		URL string `json:"url"`
	} `json:"pull_request"`
}

// ListOpenIssues fetches the repository's open issues. Pull requests,
// which the issues endpoint also returns, are filtered out.
func (c *Client) ListOpenIssues(ctx context.Context) ([]domain.ExternalIssue, error) {
	if c.token == "" {
		return nil, fmt.Errorf("github issue sync: %w: no API token configured", domain.ErrUnauthorized)
	}
	if c.owner == "" || c.repo == "" {
		return nil, domain.ValidationError("github", "owner and repo must be configured")
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues?state=open", c.endpoint, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling github API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github API error (status %d)", resp.StatusCode)
	}

	var payload []issuePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding issues: %w", err)
	}

	issues := make([]domain.ExternalIssue, 0, len(payload))
	for _, p := range payload {
		if p.PullRequest != nil {
			continue
		}
		issues = append(issues, domain.ExternalIssue{
			ID:     p.ID,
			Number: p.Number,
			Title:  p.Title,
			State:  p.State,
		})
	}
	return issues, nil
}
