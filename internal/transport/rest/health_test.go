package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(staticSource{}, "test-version")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status 'ok', got %q", resp.Status)
	}
	if resp.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		lex        *domain.Lexicon
		wantCode   int
		wantStatus string
	}{
		{"loading", nil, http.StatusServiceUnavailable, "down"},
		{"loaded", miniLexicon(t), http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			NewHealthHandler(staticSource{tt.lex}, "v").Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected status %d, got %d", tt.wantCode, rec.Code)
			}
			var resp HealthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, resp.Status)
			}
		})
	}
}

func TestHealth_Loaded(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHealthHandler(staticSource{miniLexicon(t)}, "1.2.3").Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Version != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %q", resp.Version)
	}
	comp, ok := resp.Components["lexicon"]
	if !ok {
		t.Fatal("expected lexicon component")
	}
	if comp.Status != "ok" {
		t.Errorf("expected lexicon status ok, got %q", comp.Status)
	}
	if comp.Detail != "mini-wn: 8 entries, 7 synsets" {
		t.Errorf("unexpected detail %q", comp.Detail)
	}
}

func TestHealth_Loading(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHealthHandler(staticSource{}, "1.2.3").Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Components["lexicon"].Status != "loading" {
		t.Errorf("expected lexicon status loading, got %q", resp.Components["lexicon"].Status)
	}
}
