package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"scoreboard-data-service/internal/cache"
	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/logging"
	"scoreboard-data-service/internal/metrics"
	"scoreboard-data-service/internal/providers"
)

// Aggregator serves normalized game slates, one provider per sport, through a
// read-through cache. Sports are fetched concurrently and failures stay
// isolated: a failing sport contributes an empty slate instead of failing the
// request.
type Aggregator struct {
	providers providers.Set
	cache     *cache.Cache
	logger    *slog.Logger
	recorder  *metrics.Recorder
}

// New constructs an aggregator over the given provider set.
func New(set providers.Set, gameCache *cache.Cache, logger *slog.Logger, recorder *metrics.Recorder) *Aggregator {
	return &Aggregator{
		providers: set,
		cache:     gameCache,
		logger:    logger,
		recorder:  recorder,
	}
}

// Games returns the combined slate for the requested sports, in request
// order. Cached entries are served as-is; the rest are fetched concurrently.
func (a *Aggregator) Games(ctx context.Context, sports []domain.SportID) []domain.Game {
	results := make([][]domain.Game, len(sports))

	var wg sync.WaitGroup
	for i, sport := range sports {
		if games, ok := a.cache.Get(sport); ok {
			a.recorder.RecordCacheHit(sport.Key())
			results[i] = games
			continue
		}
		a.recorder.RecordCacheMiss(sport.Key())

		wg.Add(1)
		go func(i int, sport domain.SportID) {
			defer wg.Done()
			results[i] = a.fetch(ctx, sport)
		}(i, sport)
	}
	wg.Wait()

	combined := make([]domain.Game, 0)
	for _, games := range results {
		combined = append(combined, games...)
	}
	return combined
}

// fetch calls one sport's provider and caches the outcome. Errors yield an
// empty slate and are not cached, so the next request retries upstream.
func (a *Aggregator) fetch(ctx context.Context, sport domain.SportID) []domain.Game {
	provider, ok := a.providers[sport]
	if !ok {
		logging.Warn(a.logger, "no provider registered", logging.FieldSport, sport.Key())
		return []domain.Game{}
	}

	start := time.Now()
	games, err := provider.FetchGames(ctx)
	a.recorder.RecordFetch(sport.Key(), len(games), time.Since(start), err)
	if err != nil {
		fetchErr := &providers.FetchError{Sport: sport, Err: err}
		logging.Warn(a.logger, "sport fetch failed",
			logging.FieldSport, sport.Key(), "error", fetchErr.Error())
		return []domain.Game{}
	}

	if games == nil {
		games = []domain.Game{}
	}
	a.cache.Put(sport, games)
	logging.Info(a.logger, "sport fetch complete",
		logging.FieldSport, sport.Key(),
		logging.FieldCount, len(games),
		logging.FieldDurationMS, time.Since(start).Milliseconds())
	return games
}

// Refresh fetches every registered sport regardless of cache freshness and
// stores the results. It reports the first error encountered but keeps going.
func (a *Aggregator) Refresh(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for sport, provider := range a.providers {
		wg.Add(1)
		go func(sport domain.SportID, provider providers.GameProvider) {
			defer wg.Done()

			start := time.Now()
			games, err := provider.FetchGames(ctx)
			a.recorder.RecordFetch(sport.Key(), len(games), time.Since(start), err)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("refresh %s: %w", sport.Key(), err)
				}
				mu.Unlock()
				return
			}
			if games == nil {
				games = []domain.Game{}
			}
			a.cache.Put(sport, games)
		}(sport, provider)
	}
	wg.Wait()
	return firstErr
}
