package providers

import (
	"context"

	"scoreboard-data-service/internal/domain"
)

// GameProvider defines how one sport's upstream data is fetched and
// normalized. Implementations return only games that survived normalization
// policy; records dropped by policy are not errors.
type GameProvider interface {
	FetchGames(ctx context.Context) ([]domain.Game, error)
}

// GameProviderFunc adapts a function to the GameProvider interface.
type GameProviderFunc func(ctx context.Context) ([]domain.Game, error)

// FetchGames calls the wrapped function.
func (f GameProviderFunc) FetchGames(ctx context.Context) ([]domain.Game, error) {
	return f(ctx)
}

// Set maps each sport to its provider.
type Set map[domain.SportID]GameProvider
