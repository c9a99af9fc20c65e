// Package jira fetches requirement text from Jira tickets.
//
// Only the read path needed by the generator is implemented: fetch one
// issue and flatten its summary, description, and acceptance criteria
// into plain requirement text.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
)

// Config holds Jira connection settings.
type Config struct {
	URL      string // e.g. https://company.atlassian.net
	Email    string
	APIToken string
	Timeout  time.Duration
}

// Client is a minimal Jira REST API client.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Jira client. URL, Email, and APIToken are required.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" || cfg.Email == "" || cfg.APIToken == "" {
		return nil, apperrors.New("jira.NewClient", apperrors.ErrInvalidInput,
			"Jira credentials not configured. Set JIRA_URL, JIRA_EMAIL, and JIRA_API_TOKEN environment variables")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	cfg.URL = strings.TrimSuffix(cfg.URL, "/")

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// issue mirrors the subset of the Jira issue payload we read.
type issue struct {
	Fields map[string]json.RawMessage `json:"fields"`
}

// GetTicket fetches a Jira issue by key (e.g. PROJ-123).
func (c *Client) GetTicket(ctx context.Context, ticketID string) (map[string]json.RawMessage, error) {
	url := fmt.Sprintf("%s/rest/api/3/issue/%s", c.cfg.URL, ticketID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap("jira.GetTicket", err)
	}
	req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap("jira.GetTicket", fmt.Errorf("%w: %v", apperrors.ErrUnavailable, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.Wrapf("jira.GetTicket", apperrors.ErrNotFound, "ticket not found: %s", ticketID)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.Wrapf("jira.GetTicket", apperrors.ErrUnauthorized, "check Jira credentials for %s", c.cfg.URL)
	case resp.StatusCode != http.StatusOK:
		return nil, apperrors.Wrapf("jira.GetTicket", apperrors.ErrUnavailable, "unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap("jira.GetTicket", err)
	}

	var parsed issue
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, apperrors.Wrap("jira.GetTicket", err)
	}
	return parsed.Fields, nil
}

// GetTicketDescription builds requirement text from a ticket: title,
// description, and any custom field whose key mentions acceptance
// criteria. ADF field values are flattened to plain text.
func (c *Client) GetTicketDescription(ctx context.Context, ticketID string) (string, error) {
	fields, err := c.GetTicket(ctx, ticketID)
	if err != nil {
		return "", err
	}

	var parts []string

	if summary := stringField(fields["summary"]); summary != "" {
		parts = append(parts, fmt.Sprintf("Title: %s", summary))
	}

	if description := textField(fields["description"]); description != "" {
		parts = append(parts, fmt.Sprintf("\nDescription:\n%s", description))
	}

	// Acceptance criteria live in instance-specific custom fields.
	for key, raw := range fields {
		lower := strings.ToLower(key)
		if !strings.Contains(lower, "acceptance") && !strings.Contains(lower, "criteria") {
			continue
		}
		if value := textField(raw); value != "" {
			parts = append(parts, fmt.Sprintf("\nAcceptance Criteria:\n%s", value))
		}
	}

	return strings.Join(parts, "\n"), nil
}

// stringField decodes a plain string field, returning "" on anything else.
func stringField(raw json.RawMessage) string {
	var s string
	if raw == nil || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// textField decodes a field that is either a plain string or an ADF document.
func textField(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	if s := stringField(raw); s != "" {
		return s
	}

	var doc adfNode
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	return FlattenADF(&doc)
}
