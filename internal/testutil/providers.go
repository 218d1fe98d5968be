package testutil

import (
	"context"

	"scoreboard-data-service/internal/domain"
)

// StubProvider returns a fixed slate or error on every fetch.
type StubProvider struct {
	Games []domain.Game
	Err   error
	Calls int
}

// FetchGames returns the configured slate or error.
func (s *StubProvider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	_ = ctx
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}
