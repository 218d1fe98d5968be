package server

import (
	"log/slog"

	"scoreboard-data-service/internal/config"
	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/feeds"
	"scoreboard-data-service/internal/providers"
	"scoreboard-data-service/internal/providers/fixture"
	"scoreboard-data-service/internal/sports/baseball"
	"scoreboard-data-service/internal/sports/basketball"
	"scoreboard-data-service/internal/sports/football"
	"scoreboard-data-service/internal/sports/golf"
	"scoreboard-data-service/internal/sports/hockey"
	"scoreboard-data-service/internal/teams"
)

// buildProviders assembles the per-sport provider set, each wrapped with a
// fetch deadline. sink collects unknown-team diagnostics and may be nil.
func buildProviders(cfg config.Config, logger *slog.Logger, sink teams.DiagnosticSink) providers.Set {
	var set providers.Set
	switch cfg.Provider {
	case "fixture":
		set = fixtureProviders(cfg)
	case "live", "":
		set = liveProviders(cfg, logger, sink)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to live", slog.String("provider", cfg.Provider))
		}
		set = liveProviders(cfg, logger, sink)
	}

	for sport, p := range set {
		set[sport] = providers.NewTimeoutProvider(p, logger, sport, cfg.FetchTimeout)
	}
	return set
}

func liveProviders(cfg config.Config, logger *slog.Logger, sink teams.DiagnosticSink) providers.Set {
	scoreboard := feeds.NewScoreboardClient(feeds.ScoreboardConfig{
		BaseURL: cfg.Feeds.ScoreboardBaseURL,
	})
	hockeyStats := feeds.NewScheduleClient(feeds.ScheduleConfig{
		BaseURL: cfg.Feeds.HockeyStatsBaseURL,
	}, feeds.DefaultHockeyStatsBaseURL)
	baseballStats := feeds.NewScheduleClient(feeds.ScheduleConfig{
		BaseURL: cfg.Feeds.BaseballStatsBaseURL,
	}, feeds.DefaultBaseballStatsBaseURL)
	leaderboard := feeds.NewLeaderboardClient(feeds.LeaderboardConfig{
		BaseURL: cfg.Feeds.ScoreboardBaseURL,
		League:  cfg.Feeds.GolfLeague,
	})

	return providers.Set{
		domain.SportHockey:            hockey.New(hockeyStats, teams.NewResolver(teams.NHL, sink), logger),
		domain.SportBaseball:          baseball.New(baseballStats, teams.NewResolver(teams.MLB, sink), logger),
		domain.SportBasketball:        basketball.NewNBA(scoreboard, teams.NewResolver(teams.NBA, sink), logger),
		domain.SportCollegeBasketball: basketball.NewCollege(scoreboard, teams.NewResolver(teams.NCAA, sink), logger),
		domain.SportFootball:          football.NewNFL(scoreboard, teams.NewResolver(teams.NFL, sink), logger),
		domain.SportCollegeFootball:   football.NewCollege(scoreboard, teams.NewResolver(teams.NCAA, sink), logger),
		domain.SportGolf:              golf.New(leaderboard, logger),
	}
}

func fixtureProviders(cfg config.Config) providers.Set {
	set := make(providers.Set)
	for _, sport := range domain.AllSports() {
		set[sport] = fixture.New(cfg.FixturesDir, sport)
	}
	return set
}
