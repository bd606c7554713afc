package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Lexicon.SourcePath == "" && c.Lexicon.SnapshotPath == "" {
		return fmt.Errorf("lexicon: source_path or snapshot_path is required")
	}

	if err := c.Chat.validate(); err != nil {
		return fmt.Errorf("chat: %w", err)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Database.Enabled() {
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
				c.Database.MinConns, c.Database.MaxConns)
		}
		if c.Database.ExportBatchSize < 1 {
			return fmt.Errorf("database.export_batch_size must be > 0 (got %d)", c.Database.ExportBatchSize)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (c *ChatConfig) validate() error {
	if c.FuzzyCandidates < 1 {
		return fmt.Errorf("fuzzy_candidates must be > 0 (got %d)", c.FuzzyCandidates)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", c.MaxAttempts)
	}
	if c.HintBatchSize < 1 {
		return fmt.Errorf("hint_batch_size must be > 0 (got %d)", c.HintBatchSize)
	}
	return nil
}
