package football

import (
	"context"
	"log/slog"
	"strings"
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
	Kind    string
	League  string
	Query   string
}

// Provider normalizes football scoreboard events, including down-and-distance
// and possession state.
type Provider struct {
	cfg      Config
	client   *feeds.ScoreboardClient
	resolver *teams.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewNFL constructs the pro football provider.
func NewNFL(client *feeds.ScoreboardClient, resolver *teams.Resolver, logger *slog.Logger) *Provider {
	return New(Config{
		SportID: domain.SportFootball,
		Kind:    domain.KindFootball,
		League:  "nfl",
	}, client, resolver, logger)
}

// NewCollege constructs the college football provider. The groups filter
// restricts the feed to the top division.
func NewCollege(client *feeds.ScoreboardClient, resolver *teams.Resolver, logger *slog.Logger) *Provider {
	return New(Config{
		SportID: domain.SportCollegeFootball,
		Kind:    domain.KindCollegeFootball,
		League:  "college-football",
		Query:   "groups=80",
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

// FetchGames retrieves and normalizes the current games.
func (p *Provider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	events, err := p.client.Events(ctx, "football", p.cfg.League, p.cfg.Query)
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
			logging.Warn(p.logger, "dropping football event",
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

	competition := event.Competitions[0]
	extra := extraData(competition, common.Status)
	return &domain.FootballGame{Type: p.cfg.Kind, Common: common, Extra: extra}, true, nil
}

// extraData derives the situational fields. Time remaining is display-only
// noise outside an active game, and the "0:00" sentinel carries no meaning.
// Possession is three-valued: nil means the feed named no possessing team,
// which is not the same as the away team having the ball.
func extraData(competition feeds.Competition, status domain.Status) domain.FootballExtra {
	extra := domain.FootballExtra{
		TimeRemaining: competition.Status.DisplayClock,
	}
	if status != domain.StatusActive || extra.TimeRemaining == "0:00" {
		extra.TimeRemaining = ""
	}

	situation := competition.Situation
	if situation == nil {
		return extra
	}
	extra.BallPosition = situation.PossessionText
	extra.DownString = strings.ReplaceAll(situation.ShortDownDistanceText, "&", "+")

	if situation.Possession != "" {
		home, _, err := competition.HomeAndAway()
		if err == nil {
			hasBall := situation.Possession == home.ID
			extra.HomePossession = &hasBall
		}
	}
	return extra
}
