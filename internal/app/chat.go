package app

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordnet-chat/internal/chat"
	"github.com/heartmarshall/wordnet-chat/internal/config"
	"github.com/heartmarshall/wordnet-chat/pkg/ctxutil"
)

// Chat greets the user, loads the runtime and runs one console dialogue
// until the user says goodbye, input ends or ctx is cancelled.
func Chat(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) error {
	sessionID := uuid.New()
	ctx = ctxutil.WithSessionID(ctx, sessionID)

	con := chat.NewConsole(in, out, cfg.Chat.Color)
	chat.Introduce(con)

	rt, err := Bootstrap(ctx, cfg, logger)
	if err != nil {
		return err
	}
	chat.Ready(con)

	seed := cfg.Chat.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := chat.NewEngine(rt.Lexicon, rt.Classifier, con, rand.New(rand.NewSource(seed)), logger, chat.Options{
		FuzzyCandidates: cfg.Chat.FuzzyCandidates,
		MaxAttempts:     cfg.Chat.MaxAttempts,
		HintBatchSize:   cfg.Chat.HintBatchSize,
	})

	start := time.Now()
	logger.InfoContext(ctx, "chat session started", slog.Int64("seed", seed))
	err = engine.Run(ctx)
	logger.InfoContext(ctx, "chat session ended",
		slog.String("last_entry", string(engine.State().CurrentEntry)),
		slog.Duration("duration", time.Since(start)),
	)
	return err
}
