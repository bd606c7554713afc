package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Chat     ChatConfig     `yaml:"chat"`
	Intent   IntentConfig   `yaml:"intent"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// LexiconConfig locates the WordNet-LMF source and its binary snapshot.
// When the snapshot exists it wins over the XML source.
type LexiconConfig struct {
	SourcePath   string `yaml:"source_path"   env:"LEXICON_SOURCE_PATH"`
	SnapshotPath string `yaml:"snapshot_path" env:"LEXICON_SNAPSHOT_PATH" env-default:"./data/lexicon.snapshot"`
}

// ChatConfig tunes the console dialogue.
type ChatConfig struct {
	Seed            int64 `yaml:"seed"             env:"CHAT_SEED"             env-default:"0"`
	FuzzyCandidates int   `yaml:"fuzzy_candidates" env:"CHAT_FUZZY_CANDIDATES" env-default:"7"`
	MaxAttempts     int   `yaml:"max_attempts"     env:"CHAT_MAX_ATTEMPTS"     env-default:"2"`
	HintBatchSize   int   `yaml:"hint_batch_size"  env:"CHAT_HINT_BATCH_SIZE"  env-default:"3"`
	Color           bool  `yaml:"color"            env:"CHAT_COLOR"            env-default:"true"`
}

// IntentConfig points at custom training phrases. Empty means the bundled set.
type IntentConfig struct {
	TrainingDir string `yaml:"training_dir" env:"INTENT_TRAINING_DIR"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"                  env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"                  env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"          env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"         env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"          env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT"      env-default:"10s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings. The database is only
// used by the export command, so an empty DSN is allowed.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ExportBatchSize int           `yaml:"export_batch_size"  env:"DATABASE_EXPORT_BATCH_SIZE"  env-default:"1000"`
}

// Enabled reports whether a database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// CORSConfig holds CORS settings for the lookup API.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-Id"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
