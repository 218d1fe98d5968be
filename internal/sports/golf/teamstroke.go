package golf

import (
	"regexp"
	"strconv"
	"strings"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/feeds"
)

const maxPairNameLen = 5

// teamStrokeLine matches one ranked row of the raw text scoreboard:
// a rank, a pair of player names joined by a slash, and a score token.
var teamStrokeLine = regexp.MustCompile(`^(\d+)\s+(\S+)/(\S+)\s+(\S+)`)

func isTeamStroke(competition feeds.GolfCompetition) bool {
	return strings.EqualFold(competition.ScoringSystem.Name, "Team Stroke")
}

// normalizeTeamStroke handles team-stroke events, which publish a raw text
// scoreboard instead of structured competitor rows. Each ranked line becomes
// one leaderboard entry labeled with the truncated pair names.
func (p *Provider) normalizeTeamStroke(event feeds.GolfEvent, competition feeds.GolfCompetition) (domain.Game, bool, error) {
	common, keep, err := p.commonFromLeaderboard(event, competition)
	if err != nil || !keep {
		return nil, false, err
	}

	players, complete := parseTeamStroke(competition.RawText)
	if complete {
		common.Status = domain.StatusEnd
	}

	return &domain.GolfGame{
		Type:    domain.KindGolf,
		Common:  common,
		Name:    TournamentName(event.ShortName),
		Players: players,
	}, true, nil
}

// parseTeamStroke extracts ranked pair rows from the raw text blob. Parsing
// stops after five ranked lines. The second result reports whether the blob
// declares the event complete.
func parseTeamStroke(rawText string) ([]domain.GolfPlayer, bool) {
	complete := strings.Contains(strings.ToUpper(rawText), "COMPLETE")

	players := make([]domain.GolfPlayer, 0, topRankCutoff)
	for _, line := range strings.Split(rawText, "\n") {
		match := teamStrokeLine.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		position, err := strconv.Atoi(match[1])
		if err != nil || position <= 0 {
			continue
		}
		players = append(players, domain.GolfPlayer{
			DisplayName: pairLabel(match[2], match[3]),
			Position:    position,
			Score:       match[4],
		})
		if len(players) == topRankCutoff {
			break
		}
	}
	return players, complete
}

func pairLabel(first, second string) string {
	return truncateName(first) + "/" + truncateName(second)
}

func truncateName(name string) string {
	name = strings.ToUpper(strings.Trim(name, ",."))
	if len(name) > maxPairNameLen {
		return name[:maxPairNameLen]
	}
	return name
}
