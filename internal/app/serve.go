package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordnet-chat/internal/config"
	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
	"github.com/heartmarshall/wordnet-chat/internal/transport/middleware"
	"github.com/heartmarshall/wordnet-chat/internal/transport/rest"
)

// Serve runs the HTTP lookup service until ctx is cancelled. The listener
// opens immediately; /ready reports 503 until the lexicon has loaded.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return serve(ctx, ln, cfg, logger)
}

func serve(ctx context.Context, ln net.Listener, cfg *config.Config, logger *slog.Logger) error {
	ref := &lexiconRef{}
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Handler: rest.NewRouter(rest.RouterConfig{
			Source:  ref,
			Logger:  logger,
			Limiter: limiter,
			Server:  cfg.Server,
			CORS:    cfg.CORS,
			Version: Build().String(),
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lex, err := lexicon.Open(logger, cfg.Lexicon.SourcePath, cfg.Lexicon.SnapshotPath)
		if err != nil {
			return fmt.Errorf("open lexicon: %w", err)
		}
		ref.set(lex)
		logger.InfoContext(gctx, "lexicon ready", slog.String("lexicon", lex.ID))
		return nil
	})

	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening",
			slog.String("addr", ln.Addr().String()),
			slog.String("version", Build().String()),
		)
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
