package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"scoreboard-data-service/internal/metrics"
)

// NewRouter builds the public route tree. Literal routes are registered
// before the sport parameter so probe paths never shadow a sport key.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(LoggingMiddleware(logger, recorder))

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)
	r.Get("/all", handler.AllGames)
	r.Get("/{sport}", handler.SportGames)

	return r
}
