package middleware

import (
	"github.com/rs/cors"

	"github.com/heartmarshall/wordnet-chat/internal/config"
)

// CORS returns middleware answering preflight requests and setting the
// Access-Control headers for the configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Origins(),
		AllowedMethods: cfg.Methods(),
		AllowedHeaders: cfg.Headers(),
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         cfg.MaxAge,
	})
	return c.Handler
}
