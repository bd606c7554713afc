package app

import (
	"context"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestServe_Lifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, testConfig(t), discardLogger()) }()

	transport := &http.Transport{DisableKeepAlives: true}
	defer transport.CloseIdleConnections()
	client := &http.Client{Transport: transport, Timeout: 2 * time.Second}
	base := "http://" + ln.Addr().String()

	status := func(path string) int {
		resp, err := client.Get(base + path)
		if err != nil {
			return 0
		}
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, status("/live"))
	require.Eventually(t, func() bool { return status("/ready") == http.StatusOK }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, http.StatusOK, status("/api/entries?form=bank"))
	assert.Equal(t, http.StatusNotFound, status("/api/synsets/s-none"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_LexiconFailureStopsServer(t *testing.T) {
	defer goleak.VerifyNone(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Lexicon.SourcePath = filepath.Join(t.TempDir(), "absent.xml")
	cfg.Lexicon.SnapshotPath = ""

	err = serve(context.Background(), ln, cfg, discardLogger())
	assert.ErrorContains(t, err, "open lexicon")
}
