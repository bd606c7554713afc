package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/wordnet-chat/internal/config"
	"github.com/heartmarshall/wordnet-chat/internal/transport/middleware"
)

// RouterConfig collects what the lookup router needs.
type RouterConfig struct {
	Source  LexiconSource
	Logger  *slog.Logger
	Limiter *middleware.RateLimiter
	Server  config.ServerConfig
	CORS    config.CORSConfig
	Version string
}

// NewRouter wires the health, lookup and metrics endpoints behind the
// middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	health := NewHealthHandler(cfg.Source, cfg.Version)
	lookup := NewLookupHandler(cfg.Source, cfg.Logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /api/entries", lookup.Entries)
	mux.HandleFunc("GET /api/candidates", lookup.Candidates)
	mux.HandleFunc("GET /api/synsets/{id}", lookup.Synset)
	mux.HandleFunc("GET /api/stats", lookup.Stats)
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Chain(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID,
		middleware.Logger(cfg.Logger),
		middleware.Metrics,
		middleware.CORS(cfg.CORS),
		cfg.Limiter.Limit(cfg.Server.RateLimitPerMinute),
	)(mux)
}
