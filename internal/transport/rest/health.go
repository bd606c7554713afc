package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// LexiconSource yields the served lexicon, or nil while it is still loading.
type LexiconSource interface {
	Lexicon() *domain.Lexicon
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	src     LexiconSource
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(src LexiconSource, version string) *HealthHandler {
	return &HealthHandler{src: src, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check: 200 once the lexicon is loaded, 503 before.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.src.Lexicon() == nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check with the lexicon size and build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status, overall := http.StatusOK, "ok"
	comp := CompStatus{Status: "loading"}

	if lex := h.src.Lexicon(); lex != nil {
		comp = CompStatus{
			Status: "ok",
			Detail: lex.ID + ": " + strconv.Itoa(len(lex.Entries)) + " entries, " +
				strconv.Itoa(len(lex.Synsets)) + " synsets",
		}
	} else {
		status, overall = http.StatusServiceUnavailable, "down"
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: map[string]CompStatus{"lexicon": comp},
		Timestamp:  time.Now(),
	})
}
