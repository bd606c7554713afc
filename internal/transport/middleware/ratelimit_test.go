package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newLimited(t *testing.T, perMinute int) (http.Handler, *RateLimiter, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newRateLimiter(time.Hour, clock.Now)
	t.Cleanup(rl.Stop)

	handler := rl.Limit(perMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	return handler, rl, clock
}

func hit(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/candidates?q=bank", nil)
	req.RemoteAddr = remoteAddr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	handler, _, _ := newLimited(t, 5)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "1.2.3.4:1234").Code, "request %d should be allowed", i)
	}

	rec := hit(handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "13", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_SharesBucketAcrossPorts(t *testing.T) {
	t.Parallel()

	handler, _, _ := newLimited(t, 2)

	assert.Equal(t, http.StatusOK, hit(handler, "1.1.1.1:1000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "1.1.1.1:2000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "1.1.1.1:3000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "2.2.2.2:1000").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	t.Parallel()

	handler, _, clock := newLimited(t, 60)

	for i := 0; i < 60; i++ {
		hit(handler, "3.3.3.3:1234")
	}
	require.Equal(t, http.StatusTooManyRequests, hit(handler, "3.3.3.3:1234").Code)

	clock.Advance(1100 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(handler, "3.3.3.3:1234").Code)
}

func TestRateLimiter_DisabledWhenZero(t *testing.T) {
	t.Parallel()

	handler, _, _ := newLimited(t, 0)
	for i := 0; i < 100; i++ {
		require.Equal(t, http.StatusOK, hit(handler, "4.4.4.4:1").Code)
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	t.Parallel()

	handler, rl, clock := newLimited(t, 10)
	hit(handler, "5.5.5.5:1")

	rl.evictIdle(clock.Now().Add(idleTTL / 2))
	_, ok := rl.buckets.Load("5.5.5.5")
	assert.True(t, ok, "recently used bucket must survive")

	rl.evictIdle(clock.Now().Add(idleTTL + time.Second))
	_, ok = rl.buckets.Load("5.5.5.5")
	assert.False(t, ok, "idle bucket must be evicted")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
