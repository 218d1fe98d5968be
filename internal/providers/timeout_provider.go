package providers

import (
	"context"
	"log/slog"
	"time"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/logging"
)

const defaultFetchTimeout = 10 * time.Second

// timeoutProvider wraps a GameProvider with a per-fetch deadline so one slow
// upstream cannot hold an aggregation cycle open.
type timeoutProvider struct {
	inner   GameProvider
	logger  *slog.Logger
	sport   domain.SportID
	timeout time.Duration
}

// NewTimeoutProvider wraps the given provider with a fetch deadline. If
// timeout is <= 0, the default is used.
func NewTimeoutProvider(inner GameProvider, logger *slog.Logger, sport domain.SportID, timeout time.Duration) GameProvider {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &timeoutProvider{
		inner:   inner,
		logger:  logger,
		sport:   sport,
		timeout: timeout,
	}
}

func (t *timeoutProvider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	games, err := t.inner.FetchGames(ctx)
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		logging.Warn(t.logger, "provider fetch timed out",
			logging.FieldSport, t.sport.Key(), "timeout", t.timeout.String())
	}
	return games, err
}
