package sports

import (
	"fmt"
	"strconv"
	"time"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/feeds"
	"scoreboard-data-service/internal/teams"
)

// Staleness windows are sport-specific policy, not a universal constant.
// In-season team sports play daily, so anything further than half a day out is
// noise; golf rounds span days and tee times drift, hence the wider window.
const (
	TeamSportStalenessWindow = 12 * time.Hour
	GolfStalenessWindow      = 24 * time.Hour
)

// StartTimeLayout is the canonical wire format for game start times.
const StartTimeLayout = "2006-01-02T15:04:05Z"

// NormalizeCommon turns one scoreboard event into the shared game fields.
// keep=false with a nil error means the event is excluded by policy (stale, or
// postponed/canceled); a non-nil error drops the single record and is logged
// by the caller.
func NormalizeCommon(event feeds.Event, sportID domain.SportID, resolver *teams.Resolver, now time.Time) (domain.Common, bool, error) {
	if len(event.Competitions) == 0 {
		return domain.Common{}, false, fmt.Errorf("event %s has no competitions", event.ID)
	}
	competition := event.Competitions[0]

	home, away, err := competition.HomeAndAway()
	if err != nil {
		return domain.Common{}, false, err
	}

	token := competition.Status.Type.Name
	if token == "" {
		token = event.Status.Type.Name
	}
	status, keep, err := TranslateStatus(token)
	if err != nil || !keep {
		return domain.Common{}, false, err
	}

	if Stale(event.Date.Time, now, TeamSportStalenessWindow) {
		return domain.Common{}, false, nil
	}

	id, _ := strconv.Atoi(event.ID)
	common := domain.Common{
		SportID:   sportID,
		HomeTeam:  resolver.Resolve(home.Team.ID, rawTeam(home.Team)),
		AwayTeam:  resolver.Resolve(away.Team.ID, rawTeam(away.Team)),
		Status:    status,
		Ordinal:   domain.Ordinal(periodOf(competition, event)),
		StartTime: event.Date.UTC().Format(StartTimeLayout),
		ID:        id,
	}
	common.SetScores(atoiOrZero(home.Score), atoiOrZero(away.Score))
	return common, true, nil
}

// Stale reports whether a start time falls outside the window around now.
func Stale(start, now time.Time, window time.Duration) bool {
	delta := now.Sub(start)
	if delta < 0 {
		delta = -delta
	}
	return delta > window
}

// Guard runs one record's normalization behind a recover boundary so a
// genuinely unexpected schema violation drops that record instead of aborting
// the batch.
func Guard(fn func() (domain.Game, bool, error)) (game domain.Game, keep bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			game, keep, err = nil, false, fmt.Errorf("normalize panic: %v", r)
		}
	}()
	return fn()
}

func rawTeam(t feeds.TeamPayload) teams.RawTeam {
	return teams.RawTeam{
		ID:               t.ID,
		Location:         t.Location,
		Name:             t.Name,
		ShortDisplayName: t.ShortDisplayName,
		Abbreviation:     t.Abbreviation,
		Color:            t.Color,
		AlternateColor:   t.AlternateColor,
	}
}

func periodOf(competition feeds.Competition, event feeds.Event) int {
	period := competition.Status.Period
	if period == 0 {
		period = event.Status.Period
	}
	if period < 1 {
		period = 1
	}
	return period
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
