package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-before")
				next.ServeHTTP(w, r)
				order = append(order, name+"-after")
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	Chain(trace("mw1"), trace("mw2"))(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	expected := []string{"mw1-before", "mw2-before", "handler", "mw2-after", "mw1-after"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("order[%d] = %s, want %s", i, order[i], v)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	Chain()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("expected status %d, got %d", http.StatusAccepted, rec.Code)
	}
}

func TestStatusWriter_RecordsFirstStatusAndBytes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	sw.WriteHeader(http.StatusNotFound)
	sw.WriteHeader(http.StatusOK)
	if _, err := sw.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if sw.status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", sw.status, http.StatusNotFound)
	}
	if sw.bytes != 5 {
		t.Errorf("bytes = %d, want 5", sw.bytes)
	}
}

func TestRouteOf(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	var got string
	mux.HandleFunc("GET /api/synsets/{id}", func(w http.ResponseWriter, r *http.Request) {
		got = routeOf(r)
	})
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/synsets/ewn-1-n", nil))

	if got != "GET /api/synsets/{id}" {
		t.Errorf("route = %q", got)
	}
	if r := routeOf(httptest.NewRequest(http.MethodGet, "/nowhere", nil)); r != "unmatched" {
		t.Errorf("route of unrouted request = %q, want unmatched", r)
	}
}
