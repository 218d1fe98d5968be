package feeds

import (
	"context"
	"net/http"
)

const defaultLeaderboardBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// LeaderboardConfig controls how the leaderboard client reaches its upstream.
type LeaderboardConfig struct {
	BaseURL    string
	League     string
	HTTPClient *http.Client
}

// LeaderboardClient fetches the golf leaderboard feed shape. Competitors live
// under events[].competitions[], one nesting level deeper than the scoreboard
// shape.
type LeaderboardClient struct {
	baseURL    string
	league     string
	httpClient httpDoer
}

// NewLeaderboardClient constructs a leaderboard client.
func NewLeaderboardClient(cfg LeaderboardConfig) *LeaderboardClient {
	league := cfg.League
	if league == "" {
		league = "pga"
	}
	return &LeaderboardClient{
		baseURL:    normalizeBaseURL(cfg.BaseURL, defaultLeaderboardBaseURL),
		league:     league,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Events returns the current leaderboard events.
func (c *LeaderboardClient) Events(ctx context.Context) ([]GolfEvent, error) {
	url := c.baseURL + "/golf/leaderboard?league=" + c.league
	var payload struct {
		Events []GolfEvent `json:"events"`
	}
	if err := getJSON(ctx, c.httpClient, url, &payload); err != nil {
		return nil, err
	}
	return payload.Events, nil
}

// GolfEvent is one tournament.
type GolfEvent struct {
	ID           string            `json:"id"`
	ShortName    string            `json:"shortName"`
	Competitions []GolfCompetition `json:"competitions"`
	Status       EventStatus       `json:"status"`
}

// GolfCompetition holds the field for one scoring format. Team-stroke events
// carry a raw text scoreboard blob instead of structured competitor rows.
type GolfCompetition struct {
	Competitors   []GolfCompetitor `json:"competitors"`
	Status        EventStatus      `json:"status"`
	ScoringSystem struct {
		Name string `json:"name"`
	} `json:"scoringSystem"`
	RawText string `json:"rawText"`
}

// GolfCompetitor is one player's leaderboard row.
type GolfCompetitor struct {
	Athlete struct {
		DisplayName string `json:"displayName"`
	} `json:"athlete"`
	Status     GolfPlayerStatus `json:"status"`
	Statistics []GolfStatistic  `json:"statistics"`
	Score      struct {
		DisplayValue string `json:"displayValue"`
	} `json:"score"`
}

// GolfPlayerStatus carries rank and scheduled start.
type GolfPlayerStatus struct {
	Position struct {
		ID string `json:"id"`
	} `json:"position"`
	TeeTime string `json:"teeTime"`
}

// GolfStatistic is one stat column; the first column is the score to par.
type GolfStatistic struct {
	Name         string `json:"name"`
	DisplayValue string `json:"displayValue"`
}
