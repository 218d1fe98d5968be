package baseball

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/feeds"
	"scoreboard-data-service/internal/logging"
	"scoreboard-data-service/internal/sports"
	"scoreboard-data-service/internal/teams"
)

// Provider normalizes baseball games from the two-step schedule+detail feed.
type Provider struct {
	client   *feeds.ScheduleClient
	resolver *teams.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// New constructs the baseball provider.
func New(client *feeds.ScheduleClient, resolver *teams.Resolver, logger *slog.Logger) *Provider {
	return &Provider{
		client:   client,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// FetchGames discovers today's games from the schedule, then refreshes each
// from its live detail document. A failed refresh drops that game only.
func (p *Provider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	scheduled, err := p.client.Schedule(ctx)
	if err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(scheduled))
	for _, entry := range scheduled {
		entry := entry
		game, keep, err := sports.Guard(func() (domain.Game, bool, error) {
			return p.normalize(ctx, entry)
		})
		if err != nil {
			logging.Warn(p.logger, "dropping baseball game",
				logging.FieldSport, domain.SportBaseball.Key(), "game_id", entry.GamePk, "error", err)
			continue
		}
		if keep {
			games = append(games, game)
		}
	}
	return games, nil
}

func (p *Provider) normalize(ctx context.Context, entry feeds.ScheduledGame) (domain.Game, bool, error) {
	common, keep := p.commonFromSchedule(entry)
	if !keep {
		return nil, false, nil
	}

	detail, err := p.client.BaseballDetail(ctx, entry.GamePk)
	if err != nil {
		return nil, false, err
	}
	linescore := detail.LiveData.Linescore

	game := &domain.BaseballGame{
		Type:        domain.KindBaseball,
		Common:      common,
		Balls:       linescore.Balls,
		Outs:        linescore.Outs,
		Strikes:     linescore.Strikes,
		Inning:      linescore.CurrentInning,
		IsInningTop: linescore.IsTopInning,
		OnFirst:     linescore.Offense.First != nil,
		OnSecond:    linescore.Offense.Second != nil,
		OnThird:     linescore.Offense.Third != nil,
	}
	game.Common.SetScores(linescore.Teams.Home.Runs, linescore.Teams.Away.Runs)
	applyInningState(game, detail.GameData.Status.AbstractGameState)
	return game, true, nil
}

func (p *Provider) commonFromSchedule(entry feeds.ScheduledGame) (domain.Common, bool) {
	if isCalledOff(entry.Status) {
		return domain.Common{}, false
	}
	if sports.Stale(entry.GameDate.Time, p.now(), sports.TeamSportStalenessWindow) {
		return domain.Common{}, false
	}

	homeID := strconv.Itoa(entry.Teams.Home.Team.ID)
	awayID := strconv.Itoa(entry.Teams.Away.Team.ID)
	return domain.Common{
		SportID:   domain.SportBaseball,
		HomeTeam:  p.resolver.Resolve(homeID, teams.RawTeam{ID: homeID, Name: entry.Teams.Home.Team.Name}),
		AwayTeam:  p.resolver.Resolve(awayID, teams.RawTeam{ID: awayID, Name: entry.Teams.Away.Team.Name}),
		Status:    domain.StatusPregame,
		Ordinal:   "1st",
		StartTime: entry.GameDate.UTC().Format(sports.StartTimeLayout),
		ID:        entry.GamePk,
	}, true
}

// applyInningState derives the canonical status from the feed's abstract game
// state, then re-evaluates three-out moments. The walk-off rule is
// asymmetric: a home lead after the bottom of the 9th is always final, while
// a tie after the top of the 9th never is.
func applyInningState(game *domain.BaseballGame, abstractState string) {
	common := &game.Common
	common.Ordinal = domain.Ordinal(maxInt(game.Inning, 1))

	switch abstractState {
	case "Final":
		common.Status = domain.StatusEnd
		return
	case "Live":
		common.Status = domain.StatusActive
	default: // Preview
		common.Status = domain.StatusPregame
		return
	}

	if game.Outs != 3 {
		return
	}
	gameOver := game.Inning >= 9 &&
		((!game.IsInningTop && common.HomeScore > common.AwayScore) ||
			(game.IsInningTop && common.HomeScore != common.AwayScore))
	if gameOver {
		common.Status = domain.StatusEnd
		return
	}
	common.Status = domain.StatusIntermission
	common.Ordinal = "Middle " + common.Ordinal
}

func isCalledOff(status feeds.ScheduleStatus) bool {
	detailed := strings.ToLower(status.DetailedState)
	return strings.Contains(detailed, "postponed") || strings.Contains(detailed, "cancel")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
