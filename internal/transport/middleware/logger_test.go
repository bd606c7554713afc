package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveLogged(t *testing.T, status int, path string) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("{}"))
	})
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	return m
}

func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			m := serveLogged(t, tt.status, "/api/entries")
			if m["level"] != tt.level {
				t.Errorf("level = %v, want %s", m["level"], tt.level)
			}
			if m["status"] != float64(tt.status) {
				t.Errorf("status = %v, want %d", m["status"], tt.status)
			}
		})
	}
}

func TestLogger_Attributes(t *testing.T) {
	t.Parallel()

	m := serveLogged(t, http.StatusOK, "/api/stats")

	if m["msg"] != "http.request" {
		t.Errorf("msg = %v", m["msg"])
	}
	if m["method"] != "GET" || m["path"] != "/api/stats" {
		t.Errorf("method/path = %v %v", m["method"], m["path"])
	}
	if m["route"] != "unmatched" {
		t.Errorf("route = %v, want unmatched", m["route"])
	}
	if m["bytes"] != float64(2) {
		t.Errorf("bytes = %v, want 2", m["bytes"])
	}
	if _, ok := m["duration"]; !ok {
		t.Error("expected duration attribute")
	}
}
