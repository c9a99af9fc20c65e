package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/khaled-yousef-TV/ai-test-generator/internal/apperrors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		URL:      srv.URL,
		Email:    "qa@example.com",
		APIToken: "token",
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing url", Config{Email: "a@b.c", APIToken: "t"}},
		{"missing email", Config{URL: "https://x.atlassian.net", APIToken: "t"}},
		{"missing token", Config{URL: "https://x.atlassian.net", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewClient(tt.cfg); !apperrors.IsInvalidInput(err) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestGetTicketDescription(t *testing.T) {
	payload := map[string]any{
		"fields": map[string]any{
			"summary": "Login feature",
			"description": map[string]any{
				"type": "doc",
				"content": []any{
					map[string]any{
						"type": "paragraph",
						"content": []any{
							map[string]any{"type": "text", "text": "Users sign in with email."},
						},
					},
				},
			},
			"customfield_10016_acceptance_criteria": "Email must be validated",
		},
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/issue/PROJ-123" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("request missing basic auth")
		}
		json.NewEncoder(w).Encode(payload)
	})

	text, err := client.GetTicketDescription(context.Background(), "PROJ-123")
	if err != nil {
		t.Fatalf("GetTicketDescription: %v", err)
	}

	for _, want := range []string{
		"Title: Login feature",
		"Description:\nUsers sign in with email.",
		"Acceptance Criteria:\nEmail must be validated",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}
}

func TestGetTicketNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetTicketDescription(context.Background(), "PROJ-404")
	if !apperrors.IsNotFound(err) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetTicketUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetTicketDescription(context.Background(), "PROJ-1")
	if !apperrors.IsUnauthorized(err) {
		t.Errorf("error = %v, want ErrUnauthorized", err)
	}
}

func TestGetTicketServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetTicketDescription(context.Background(), "PROJ-1")
	if !apperrors.IsUnavailable(err) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}
