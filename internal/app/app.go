// Package app assembles the lexicon, the intent classifier and the
// transports into the runnable commands.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordnet-chat/internal/config"
	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/intent"
	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
)

// Runtime holds what every dialogue needs once loaded.
type Runtime struct {
	Lexicon    *domain.Lexicon
	Classifier *intent.Classifier
}

// Bootstrap loads the lexicon and trains the intent classifier concurrently.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	var rt Runtime
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lex, err := lexicon.Open(logger, cfg.Lexicon.SourcePath, cfg.Lexicon.SnapshotPath)
		if err != nil {
			return fmt.Errorf("open lexicon: %w", err)
		}
		rt.Lexicon = lex
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		c, err := intent.Load(cfg.Intent.TrainingDir)
		if err != nil {
			return fmt.Errorf("train intent classifier: %w", err)
		}
		rt.Classifier = c
		labels := 0
		for _, ctx := range intent.Trained {
			labels += len(c.Labels(ctx))
		}
		logger.DebugContext(gctx, "intent classifier trained",
			slog.String("training_dir", cfg.Intent.TrainingDir),
			slog.Int("labels", labels),
			slog.Duration("took", time.Since(start)),
		)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &rt, nil
}

// lexiconRef publishes a lexicon loaded in the background to the HTTP
// handlers.
type lexiconRef struct {
	p atomic.Pointer[domain.Lexicon]
}

func (r *lexiconRef) Lexicon() *domain.Lexicon { return r.p.Load() }

func (r *lexiconRef) set(lex *domain.Lexicon) { r.p.Store(lex) }
