package feeds

import (
	"context"
	"fmt"
	"net/http"
)

const defaultScoreboardBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// ScoreboardConfig controls how the scoreboard client reaches the upstream feed.
type ScoreboardConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// ScoreboardClient fetches the generic scoreboard feed shape: a JSON document
// with an events array, one entry per game.
type ScoreboardClient struct {
	baseURL    string
	httpClient httpDoer
}

// NewScoreboardClient constructs a scoreboard client.
func NewScoreboardClient(cfg ScoreboardConfig) *ScoreboardClient {
	return &ScoreboardClient{
		baseURL:    normalizeBaseURL(cfg.BaseURL, defaultScoreboardBaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Events returns the day's raw events for a sport/league pair. query, when
// non-empty, is appended verbatim (e.g. "groups=80" for the top college
// football division).
func (c *ScoreboardClient) Events(ctx context.Context, sport, league, query string) ([]Event, error) {
	url := fmt.Sprintf("%s/%s/%s/scoreboard", c.baseURL, sport, league)
	if query != "" {
		url += "?" + query
	}

	var payload struct {
		Events []Event `json:"events"`
	}
	if err := getJSON(ctx, c.httpClient, url, &payload); err != nil {
		return nil, err
	}
	return payload.Events, nil
}

// Event is one scoreboard game record.
type Event struct {
	ID           string        `json:"id"`
	Date         FeedTime      `json:"date"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Competitions []Competition `json:"competitions"`
	Status       EventStatus   `json:"status"`
}

// Competition holds the competitors and live situation for an event.
type Competition struct {
	Competitors []Competitor `json:"competitors"`
	Situation   *Situation   `json:"situation"`
	Status      EventStatus  `json:"status"`
}

// Competitor is one side of a competition, tagged home or away.
type Competitor struct {
	ID       string      `json:"id"`
	HomeAway string      `json:"homeAway"`
	Score    string      `json:"score"`
	Team     TeamPayload `json:"team"`
}

// TeamPayload is the upstream team record used for registry resolution and
// unknown-team synthesis.
type TeamPayload struct {
	ID               string `json:"id"`
	Location         string `json:"location"`
	Name             string `json:"name"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Abbreviation     string `json:"abbreviation"`
	Color            string `json:"color"`
	AlternateColor   string `json:"alternateColor"`
}

// EventStatus carries the raw status token, period, and clock.
type EventStatus struct {
	DisplayClock string     `json:"displayClock"`
	Period       int        `json:"period"`
	Type         StatusType `json:"type"`
}

// StatusType wraps the feed's status token.
type StatusType struct {
	Name        string `json:"name"`
	ShortDetail string `json:"shortDetail"`
	Completed   bool   `json:"completed"`
}

// Situation is the live in-play state; absent before first pitch/kickoff.
type Situation struct {
	Balls                 int    `json:"balls"`
	Strikes               int    `json:"strikes"`
	Outs                  int    `json:"outs"`
	OnFirst               bool   `json:"onFirst"`
	OnSecond              bool   `json:"onSecond"`
	OnThird               bool   `json:"onThird"`
	Possession            string `json:"possession"`
	PossessionText        string `json:"possessionText"`
	ShortDownDistanceText string `json:"shortDownDistanceText"`
}

// HomeAndAway extracts the two competitors by their explicit tags. Array order
// is feed-defined and not trustworthy.
func (c Competition) HomeAndAway() (home, away Competitor, err error) {
	var haveHome, haveAway bool
	for _, comp := range c.Competitors {
		switch comp.HomeAway {
		case "home":
			home, haveHome = comp, true
		case "away":
			away, haveAway = comp, true
		}
	}
	if !haveHome || !haveAway {
		return home, away, fmt.Errorf("competition missing home/away tags (%d competitors)", len(c.Competitors))
	}
	return home, away, nil
}
