package cache

import (
	"sync"
	"time"

	"scoreboard-data-service/internal/domain"
)

// DefaultTTL bounds how long a cached slate is served before the next read
// refetches upstream.
const DefaultTTL = 60 * time.Second

type entry struct {
	games     []domain.Game
	fetchedAt time.Time
}

// Cache keeps a thread-safe per-sport snapshot of normalized games with a
// fixed time-to-live. Entries past the TTL are treated as absent.
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.SportID]entry
	ttl     time.Duration
	now     func() time.Time
}

// New constructs an empty cache. If ttl is <= 0, DefaultTTL is used.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[domain.SportID]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached games for a sport when the entry is still fresh.
func (c *Cache) Get(sport domain.SportID) ([]domain.Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[sport]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	games := make([]domain.Game, len(e.games))
	copy(games, e.games)
	return games, true
}

// Put replaces the cached games for a sport. An empty slate is a valid
// cacheable result.
func (c *Cache) Put(sport domain.SportID, games []domain.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]domain.Game, len(games))
	copy(stored, games)
	c.entries[sport] = entry{games: stored, fetchedAt: c.now()}
}

// Len reports how many sports currently have an entry, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
