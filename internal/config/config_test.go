package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
lexicon:
  source_path: "./data/english-wordnet-2023.xml"
  snapshot_path: "./data/oewn.snapshot"

chat:
  seed: 42
  fuzzy_candidates: 5
  max_attempts: 3
  color: false

intent:
  training_dir: "./phrases"

server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  rate_limit_per_minute: 60

database:
  dsn: "postgres://u:p@localhost:5432/wordnet"
  max_conns: 4
  min_conns: 1

cors:
  allowed_origins: "https://a.example, https://b.example"

log:
  level: "debug"
  format: "json"
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Lexicon.SnapshotPath != "./data/oewn.snapshot" {
		t.Errorf("lexicon.snapshot_path = %q", cfg.Lexicon.SnapshotPath)
	}
	if cfg.Chat.Seed != 42 {
		t.Errorf("chat.seed = %d, want 42", cfg.Chat.Seed)
	}
	if cfg.Chat.FuzzyCandidates != 5 {
		t.Errorf("chat.fuzzy_candidates = %d, want 5", cfg.Chat.FuzzyCandidates)
	}
	if cfg.Chat.MaxAttempts != 3 {
		t.Errorf("chat.max_attempts = %d, want 3", cfg.Chat.MaxAttempts)
	}
	if cfg.Chat.HintBatchSize != 3 {
		t.Errorf("chat.hint_batch_size = %d, want 3 (default)", cfg.Chat.HintBatchSize)
	}
	if cfg.Chat.Color {
		t.Error("chat.color = true, want false")
	}
	if cfg.Intent.TrainingDir != "./phrases" {
		t.Errorf("intent.training_dir = %q", cfg.Intent.TrainingDir)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("server.write_timeout = %v, want 30s (default)", cfg.Server.WriteTimeout)
	}
	if cfg.Server.RateLimitPerMinute != 60 {
		t.Errorf("server.rate_limit_per_minute = %d, want 60", cfg.Server.RateLimitPerMinute)
	}

	if !cfg.Database.Enabled() {
		t.Error("database should be enabled")
	}
	if cfg.Database.MaxConns != 4 {
		t.Errorf("database.max_conns = %d, want 4", cfg.Database.MaxConns)
	}

	origins := cfg.CORS.Origins()
	if len(origins) != 2 || origins[1] != "https://b.example" {
		t.Errorf("cors origins = %v", origins)
	}
	if got := cfg.CORS.Methods(); len(got) != 2 || got[0] != "GET" {
		t.Errorf("cors methods = %v, want default GET,OPTIONS", got)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("CHAT_SEED", "7")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Chat.Seed != 7 {
		t.Errorf("chat.seed = %d, want 7 (ENV override)", cfg.Chat.Seed)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LEXICON_SOURCE_PATH", "/srv/wn.xml")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Lexicon.SourcePath != "/srv/wn.xml" {
		t.Errorf("lexicon.source_path = %q", cfg.Lexicon.SourcePath)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Chat.FuzzyCandidates != 7 || cfg.Chat.MaxAttempts != 2 {
		t.Errorf("chat defaults = %+v", cfg.Chat)
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled without a DSN")
	}
}

func TestLoadFrom_ExplicitPathNotFound(t *testing.T) {
	if _, err := LoadFrom("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"snapshot only", func(c *Config) { c.Lexicon.SourcePath = "" }, false},
		{"no lexicon", func(c *Config) { c.Lexicon = LexiconConfig{} }, true},
		{"zero fuzzy candidates", func(c *Config) { c.Chat.FuzzyCandidates = 0 }, true},
		{"zero attempts", func(c *Config) { c.Chat.MaxAttempts = 0 }, true},
		{"zero hint batch", func(c *Config) { c.Chat.HintBatchSize = 0 }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative rate limit", func(c *Config) { c.Server.RateLimitPerMinute = -1 }, true},
		{"rate limit disabled", func(c *Config) { c.Server.RateLimitPerMinute = 0 }, false},
		{"min conns above max", func(c *Config) {
			c.Database.DSN = "postgres://x"
			c.Database.MinConns = 5
			c.Database.MaxConns = 2
		}, true},
		{"bad batch size ignored without dsn", func(c *Config) { c.Database.ExportBatchSize = 0 }, false},
		{"bad batch size with dsn", func(c *Config) {
			c.Database.DSN = "postgres://x"
			c.Database.ExportBatchSize = 0
		}, true},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"upper case log format", func(c *Config) { c.Log.Format = "JSON" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// validConfig returns a Config that passes all validation checks.
func validConfig() Config {
	return Config{
		Lexicon: LexiconConfig{
			SourcePath:   "wn.xml",
			SnapshotPath: "wn.snapshot",
		},
		Chat: ChatConfig{
			FuzzyCandidates: 7,
			MaxAttempts:     2,
			HintBatchSize:   3,
		},
		Server: ServerConfig{
			Port:               8080,
			RateLimitPerMinute: 120,
		},
		Database: DatabaseConfig{
			MaxConns:        10,
			MinConns:        1,
			ExportBatchSize: 1000,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}
