package lexicon

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// Open returns the lexicon from snapshotPath when that file exists, otherwise
// it ingests sourcePath and, if snapshotPath is set, writes a snapshot for the
// next start.
func Open(logger *slog.Logger, sourcePath, snapshotPath string) (*domain.Lexicon, error) {
	start := time.Now()

	if snapshotPath != "" {
		_, err := os.Stat(snapshotPath)
		switch {
		case err == nil:
			lex, err := Restore(snapshotPath)
			if err != nil {
				return nil, err
			}
			logger.Info("lexicon restored",
				slog.String("lexicon", lex.ID),
				slog.String("snapshot", snapshotPath),
				slog.Int("entries", len(lex.Entries)),
				slog.Duration("took", time.Since(start)),
			)
			return lex, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
		}
	}

	if sourcePath == "" {
		return nil, fmt.Errorf("no lexicon snapshot at %q and no source path configured", snapshotPath)
	}

	lex, err := LoadXML(sourcePath)
	if err != nil {
		return nil, err
	}
	logger.Info("lexicon ingested",
		slog.String("lexicon", lex.ID),
		slog.String("source", sourcePath),
		slog.Int("entries", len(lex.Entries)),
		slog.Int("synsets", len(lex.Synsets)),
		slog.Duration("took", time.Since(start)),
	)

	if snapshotPath != "" {
		if err := Save(lex, snapshotPath); err != nil {
			return nil, err
		}
		logger.Info("lexicon snapshot written", slog.String("snapshot", snapshotPath))
	}
	return lex, nil
}
