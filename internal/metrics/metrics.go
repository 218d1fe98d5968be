package metrics

import (
	"sync"
	"time"
)

type sportStats struct {
	fetches          int
	errors           int
	cacheHits        int
	cacheMisses      int
	lastGameCount    int
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about sport fetches and
// cache traffic. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sportStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sportStats),
		otel:  otel,
	}
}

// RecordFetch increments counters for one sport fetch and stores the last
// observed latency and game count.
func (r *Recorder) RecordFetch(sport string, games int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(sport)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.lastGameCount = games
	}
	if r.otel != nil {
		r.otel.recordFetch(sport, games, duration, err)
	}
}

// RecordCacheHit tracks a request served from the cache.
func (r *Recorder) RecordCacheHit(sport string) {
	if r == nil {
		return
	}
	r.ensureStats(sport).cacheHits++
	if r.otel != nil {
		r.otel.recordCache(sport, true)
	}
}

// RecordCacheMiss tracks a request that went upstream.
func (r *Recorder) RecordCacheMiss(sport string) {
	if r == nil {
		return
	}
	r.ensureStats(sport).cacheMisses++
	if r.otel != nil {
		r.otel.recordCache(sport, false)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordWarmCycle tracks cache warmer cycles and errors.
func (r *Recorder) RecordWarmCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWarmCycle(duration, err)
}

// Snapshot is a copy of the current stats for one sport.
type Snapshot struct {
	Fetches          int
	Errors           int
	CacheHits        int
	CacheMisses      int
	LastGameCount    int
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(sport string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(sport)
	return Snapshot{
		Fetches:          stats.fetches,
		Errors:           stats.errors,
		CacheHits:        stats.cacheHits,
		CacheMisses:      stats.cacheMisses,
		LastGameCount:    stats.lastGameCount,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// Fetches returns the total fetch attempts recorded for a sport.
func (r *Recorder) Fetches(sport string) int {
	return r.Snapshot(sport).Fetches
}

// Errors returns the total failed fetches recorded for a sport.
func (r *Recorder) Errors(sport string) int {
	return r.Snapshot(sport).Errors
}

// CacheHits returns the cache hits recorded for a sport.
func (r *Recorder) CacheHits(sport string) int {
	return r.Snapshot(sport).CacheHits
}

// CacheMisses returns the cache misses recorded for a sport.
func (r *Recorder) CacheMisses(sport string) int {
	return r.Snapshot(sport).CacheMisses
}

func (r *Recorder) ensureStats(sport string) *sportStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[sport]
	if !ok {
		stats = &sportStats{}
		r.stats[sport] = stats
	}
	return stats
}

func (r *Recorder) snapshot(sport string) sportStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[sport]; ok && stats != nil {
		return *stats
	}
	return sportStats{}
}
