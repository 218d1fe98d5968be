package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"scoreboard-data-service/internal/domain"
)

// Provider serves games from JSON files on disk, one file per sport, useful
// for local development and demos without upstream access. Files are named
// {dir}/{sport-key}.json and hold a games payload in the wire format.
type Provider struct {
	dir   string
	sport domain.SportID
}

// New creates a fixture provider for one sport reading from dir.
func New(dir string, sport domain.SportID) *Provider {
	return &Provider{dir: dir, sport: sport}
}

// FetchGames loads and decodes the sport's fixture file. A missing file
// yields an empty slate rather than an error.
func (p *Provider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	_ = ctx

	path := filepath.Join(p.dir, p.sport.Key()+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Game{}, nil
		}
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}

	var payload domain.GamesPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return payload.Games, nil
}
