package hockey

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

// fullPeriodClock is the time remaining shown for a period that has not
// started. The feed has no explicit intermission status; it must be inferred
// from clock state.
const fullPeriodClock = "20:00"

// Provider normalizes hockey games from the two-step schedule+detail feed.
type Provider struct {
	client   *feeds.ScheduleClient
	resolver *teams.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// New constructs the hockey provider.
func New(client *feeds.ScheduleClient, resolver *teams.Resolver, logger *slog.Logger) *Provider {
	return &Provider{
		client:   client,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// FetchGames discovers today's games from the schedule, then refreshes each
// from its live linescore. A failed refresh drops that game only.
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
			logging.Warn(p.logger, "dropping hockey game",
				logging.FieldSport, domain.SportHockey.Key(), "game_id", entry.GamePk, "error", err)
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

	linescore, err := p.client.HockeyLinescore(ctx, entry.GamePk)
	if err != nil {
		return nil, false, err
	}

	game := &domain.HockeyGame{
		Type:          domain.KindHockey,
		Common:        common,
		AwayPowerplay: linescore.Teams.Away.PowerPlay,
		HomePowerplay: linescore.Teams.Home.PowerPlay,
		AwaySkaters:   domain.ClampScore(linescore.Teams.Away.NumSkaters),
		HomeSkaters:   domain.ClampScore(linescore.Teams.Home.NumSkaters),
	}
	game.Common.SetScores(linescore.Teams.Home.Goals, linescore.Teams.Away.Goals)
	applyClockState(&game.Common, linescore)
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
		SportID:   domain.SportHockey,
		HomeTeam:  p.resolver.Resolve(homeID, teams.RawTeam{ID: homeID, Name: entry.Teams.Home.Team.Name}),
		AwayTeam:  p.resolver.Resolve(awayID, teams.RawTeam{ID: awayID, Name: entry.Teams.Away.Team.Name}),
		Status:    domain.StatusPregame,
		Ordinal:   "1st",
		StartTime: entry.GameDate.UTC().Format(sports.StartTimeLayout),
		ID:        entry.GamePk,
	}, true
}

// applyClockState derives the canonical status from the linescore clock. The
// period>=3 tied-score check distinguishes a true final from the intermission
// before overtime: "END" at the end of the 3rd with a tied score means more
// hockey is coming.
func applyClockState(common *domain.Common, linescore feeds.HockeyLinescore) {
	period := linescore.CurrentPeriod
	remaining := linescore.CurrentPeriodTimeRemaining
	if remaining == "" {
		remaining = fullPeriodClock
	}
	if period >= 1 && linescore.CurrentPeriodOrdinal != "" {
		common.Ordinal = linescore.CurrentPeriodOrdinal
	}

	switch {
	case remaining == "Final":
		common.Status = domain.StatusEnd
	case remaining == "END":
		if period >= 3 && common.AwayScore != common.HomeScore {
			common.Status = domain.StatusEnd
		} else {
			common.Status = domain.StatusIntermission
			common.Ordinal += " INT"
		}
	case remaining == fullPeriodClock && period > 1:
		common.Status = domain.StatusIntermission
		common.Ordinal += " INT"
	case remaining != fullPeriodClock && period >= 1:
		common.Status = domain.StatusActive
	default:
		common.Status = domain.StatusPregame
	}
}

func isCalledOff(status feeds.ScheduleStatus) bool {
	detailed := strings.ToLower(status.DetailedState)
	return strings.Contains(detailed, "postponed") || strings.Contains(detailed, "cancel")
}
