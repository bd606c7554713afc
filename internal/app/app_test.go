package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordnet-chat/internal/config"
	"github.com/heartmarshall/wordnet-chat/internal/intent"
)

const miniXML = "../lexicon/testdata/mini-wn.xml"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Lexicon: config.LexiconConfig{
			SourcePath:   miniXML,
			SnapshotPath: filepath.Join(t.TempDir(), "lexicon.snapshot"),
		},
		Chat: config.ChatConfig{Seed: 1, FuzzyCandidates: 7, MaxAttempts: 2, HintBatchSize: 3},
		Server: config.ServerConfig{
			Host:               "127.0.0.1",
			ReadTimeout:        5 * time.Second,
			WriteTimeout:       5 * time.Second,
			IdleTimeout:        5 * time.Second,
			ShutdownTimeout:    5 * time.Second,
			RateLimitPerMinute: 1000,
		},
		CORS: config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,OPTIONS"},
		Log:  config.LogConfig{Level: "info", Format: "text"},
	}
}

func TestBootstrap_WritesSnapshot(t *testing.T) {
	cfg := testConfig(t)

	rt, err := Bootstrap(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, rt.Lexicon)
	require.NotNil(t, rt.Classifier)
	assert.Equal(t, "mini-wn", rt.Lexicon.ID)
	assert.NotEmpty(t, rt.Classifier.Labels(intent.YesNo))

	_, err = os.Stat(cfg.Lexicon.SnapshotPath)
	require.NoError(t, err, "first start should write the snapshot")

	cfg.Lexicon.SourcePath = ""
	rt, err = Bootstrap(context.Background(), cfg, discardLogger())
	require.NoError(t, err, "second start should restore from the snapshot alone")
	assert.Len(t, rt.Lexicon.Entries, 8)
}

func TestBootstrap_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"missing source", func(c *config.Config) {
			c.Lexicon.SourcePath = filepath.Join(t.TempDir(), "absent.xml")
		}},
		{"missing training dir", func(c *config.Config) {
			c.Intent.TrainingDir = filepath.Join(t.TempDir(), "absent")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			_, err := Bootstrap(context.Background(), cfg, discardLogger())
			assert.Error(t, err)
		})
	}
}

func TestLexiconRef(t *testing.T) {
	var ref lexiconRef
	assert.Nil(t, ref.Lexicon())

	rt, err := Bootstrap(context.Background(), testConfig(t), discardLogger())
	require.NoError(t, err)
	ref.set(rt.Lexicon)
	assert.Same(t, rt.Lexicon, ref.Lexicon())
}
