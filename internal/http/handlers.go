package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"scoreboard-data-service/internal/aggregator"
	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/logging"
	"scoreboard-data-service/internal/poller"
)

// Handler wires HTTP routes to the aggregator.
type Handler struct {
	agg      *aggregator.Aggregator
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn is optional; without it the ready
// probe always reports ready.
func NewHandler(agg *aggregator.Aggregator, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		agg:      agg,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// AllGames returns the combined slate across every sport.
func (h *Handler) AllGames(w http.ResponseWriter, r *http.Request) {
	h.respondGames(w, r, domain.AllSports())
}

// SportGames returns the slate for one sport named by its URL key.
func (h *Handler) SportGames(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "sport")
	sport, ok := domain.ParseSportKey(key)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown sport", h.logger)
		return
	}
	h.respondGames(w, r, []domain.SportID{sport})
}

func (h *Handler) respondGames(w http.ResponseWriter, r *http.Request, sports []domain.SportID) {
	games := h.agg.Games(r.Context(), sports)

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served games", logging.FieldCount, len(games))

	payload := domain.Response{Data: domain.GamesPayload{Games: games}}
	writeJSON(w, http.StatusOK, payload, h.logger)
}
