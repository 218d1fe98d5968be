package golf

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/feeds"
	"scoreboard-data-service/internal/logging"
	"scoreboard-data-service/internal/sports"
)

// topRankCutoff bounds the leaderboard rows surfaced to clients: positions in
// (0, topRankCutoff) survive the rank filter.
const topRankCutoff = 5

// Provider normalizes golf tournaments from the leaderboard feed.
type Provider struct {
	client *feeds.LeaderboardClient
	logger *slog.Logger
	now    func() time.Time
}

// New constructs the golf provider.
func New(client *feeds.LeaderboardClient, logger *slog.Logger) *Provider {
	return &Provider{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// FetchGames retrieves and normalizes the current tournaments.
func (p *Provider) FetchGames(ctx context.Context) ([]domain.Game, error) {
	events, err := p.client.Events(ctx)
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
			logging.Warn(p.logger, "dropping golf event",
				logging.FieldSport, domain.SportGolf.Key(), "event_id", event.ID, "error", err)
			continue
		}
		if keep {
			games = append(games, game)
		}
	}
	return games, nil
}

func (p *Provider) normalize(event feeds.GolfEvent) (domain.Game, bool, error) {
	if len(event.Competitions) == 0 {
		return nil, false, nil
	}
	competition := event.Competitions[0]

	if isTeamStroke(competition) {
		return p.normalizeTeamStroke(event, competition)
	}

	common, keep, err := p.commonFromLeaderboard(event, competition)
	if err != nil || !keep {
		return nil, false, err
	}

	players := topPlayers(competition.Competitors)
	return &domain.GolfGame{
		Type:    domain.KindGolf,
		Common:  common,
		Name:    TournamentName(event.ShortName),
		Players: players,
	}, true, nil
}

// commonFromLeaderboard builds the shared fields for a golf event. The event's
// nominal start field is unreliable; the earliest competitor tee time is the
// authoritative start signal. A feed still marked active whose earliest tee
// time is in the future is a pre-opened next-round tee sheet: report the day's
// play as ended until play actually begins.
func (p *Provider) commonFromLeaderboard(event feeds.GolfEvent, competition feeds.GolfCompetition) (domain.Common, bool, error) {
	token := competition.Status.Type.Name
	if token == "" {
		token = event.Status.Type.Name
	}
	status, keep, err := sports.TranslateStatus(token)
	if err != nil || !keep {
		return domain.Common{}, false, err
	}

	teeTime, ok := earliestTeeTime(competition.Competitors)
	if !ok {
		return domain.Common{}, false, nil
	}

	now := p.now()
	alwaysKept := status == domain.StatusActive || status == domain.StatusEnd
	if !alwaysKept && sports.Stale(teeTime, now, sports.GolfStalenessWindow) {
		return domain.Common{}, false, nil
	}

	if status == domain.StatusActive && teeTime.After(now) {
		status = domain.StatusEnd
	}

	id, _ := strconv.Atoi(event.ID)
	return domain.Common{
		SportID:   domain.SportGolf,
		HomeTeam:  placeholderTeam(),
		AwayTeam:  placeholderTeam(),
		Status:    status,
		Ordinal:   domain.Ordinal(roundOf(competition, event)),
		StartTime: teeTime.Format(sports.StartTimeLayout),
		ID:        id,
	}, true, nil
}

func earliestTeeTime(competitors []feeds.GolfCompetitor) (time.Time, bool) {
	var (
		earliest time.Time
		found    bool
	)
	for _, competitor := range competitors {
		raw := competitor.Status.TeeTime
		if raw == "" {
			continue
		}
		parsed, err := parseTeeTime(raw)
		if err != nil {
			continue
		}
		if !found || parsed.Before(earliest) {
			earliest, found = parsed, true
		}
	}
	return earliest, found
}

var teeTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.000-0700",
}

func parseTeeTime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range teeTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// topPlayers keeps the ranked leaders, ties excluded by the rank filter, in
// ascending position order.
func topPlayers(competitors []feeds.GolfCompetitor) []domain.GolfPlayer {
	players := make([]domain.GolfPlayer, 0, topRankCutoff)
	for _, competitor := range competitors {
		position, err := strconv.Atoi(competitor.Status.Position.ID)
		if err != nil || position <= 0 || position >= topRankCutoff {
			continue
		}
		players = append(players, domain.GolfPlayer{
			DisplayName: lastName(competitor.Athlete.DisplayName),
			Position:    position,
			Score:       scoreOf(competitor),
		})
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Position < players[j].Position })
	if len(players) > topRankCutoff {
		players = players[:topRankCutoff]
	}
	return players
}

var honorifics = map[string]bool{
	"JR.": true, "JR": true, "SR.": true, "SR": true,
	"II": true, "III": true, "IV": true, "V": true, "VI": true,
}

// lastName extracts the player's surname, walking back over honorific
// generational suffixes and stripping stray punctuation.
func lastName(displayName string) string {
	words := strings.Fields(strings.ToUpper(displayName))
	for len(words) > 1 && honorifics[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	if len(words) == 0 {
		return ""
	}
	last := words[len(words)-1]
	return strings.Trim(last, ",.")
}

func scoreOf(competitor feeds.GolfCompetitor) string {
	if len(competitor.Statistics) == 0 {
		if competitor.Score.DisplayValue != "" {
			return competitor.Score.DisplayValue
		}
		return "E"
	}
	return competitor.Statistics[0].DisplayValue
}

// trailingBoilerplate are event-name suffixes that waste display width.
var trailingBoilerplate = map[string]bool{
	"TOURNAMENT":   true,
	"CHAMPIONSHIP": true,
}

// TournamentName cleans a tournament short name for display: trailing
// boilerplate words, a leading ordinal/sponsor token, and a trailing "OF ..."
// clause are removed. The Masters gets its article back.
func TournamentName(shortName string) string {
	words := strings.Fields(strings.ToUpper(shortName))
	if len(words) == 0 {
		return ""
	}

	if trailingBoilerplate[words[len(words)-1]] {
		words = words[:len(words)-1]
	}
	if len(words) > 1 && isDigits(words[0]) {
		words = words[1:]
	}
	for i, word := range words {
		if word == "OF" && i > 0 {
			words = words[:i]
			break
		}
	}

	name := strings.Join(words, " ")
	if len(words) > 0 && words[0] == "MASTERS" {
		name = "THE " + name
	}
	return name
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func roundOf(competition feeds.GolfCompetition, event feeds.GolfEvent) int {
	period := competition.Status.Period
	if period == 0 {
		period = event.Status.Period
	}
	if period < 1 {
		period = 1
	}
	return period
}

func placeholderTeam() domain.Team {
	return domain.Team{
		ID:             "0",
		PrimaryColor:   "000000",
		SecondaryColor: "000000",
	}
}
