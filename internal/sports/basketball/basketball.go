package basketball

import (
	"context"
	"log/slog"
	"time"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/feeds"
	"scoreboard-data-service/internal/logging"
	"scoreboard-data-service/internal/sports"
	"scoreboard-data-service/internal/teams"
)

// Config selects the league served by a Provider.
type Config struct {
	SportID domain.SportID
	Kind    string // wire discriminant
	League  string // scoreboard feed league path segment
	Query   string // optional extra query string
}

// Provider normalizes basketball scoreboard events. Basketball carries no
// sport-specific fields beyond the common game data.
type Provider struct {
	cfg      Config
	client   *feeds.ScoreboardClient
	resolver *teams.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewNBA constructs the pro basketball provider.
func NewNBA(client *feeds.ScoreboardClient, resolver *teams.Resolver, logger *slog.Logger) *Provider {
	return New(Config{
		SportID: domain.SportBasketball,
		Kind:    domain.KindBasketball,
		League:  "nba",
	}, client, resolver, logger)
}

// NewCollege constructs the men's college basketball provider.
func NewCollege(client *feeds.ScoreboardClient, resolver *teams.Resolver, logger *slog.Logger) *Provider {
	return New(Config{
		SportID: domain.SportCollegeBasketball,
		Kind:    domain.KindCollegeBasketball,
		League:  "mens-college-basketball",
	}, client, resolver, logger)
}

// New constructs a Provider from an explicit config.
func New(cfg Config, client *feeds.ScoreboardClient, resolver *teams.Resolver, logger *slog.Logger) *Provider {
	return &Provider{
		cfg:      cfg,
		client:   client,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// FetchGames retrieves and normalizes the current games. Records that fail
// normalization are dropped individually, never the batch.
func (p *Provider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	events, err := p.client.Events(ctx, "basketball", p.cfg.League, p.cfg.Query)
	if err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(events))
	for _, event := range events {
		event := event
		game, keep, err := sports.Guard(func() (domain.Game, bool, error) {
			return p.normalize(event)
		})
		if err != nil {
			logging.Warn(p.logger, "dropping basketball event",
				logging.FieldSport, p.cfg.SportID.Key(), "event_id", event.ID, "error", err)
			continue
		}
		if keep {
			games = append(games, game)
		}
	}
	return games, nil
}

func (p *Provider) normalize(event feeds.Event) (domain.Game, bool, error) {
	common, keep, err := sports.NormalizeCommon(event, p.cfg.SportID, p.resolver, p.now())
	if err != nil || !keep {
		return nil, false, err
	}
	return &domain.BasketballGame{Type: p.cfg.Kind, Common: common}, true, nil
}
