package feeds

import (
	"context"
	"fmt"
	"net/http"
)

// Default upstreams for the two schedule-shaped feeds.
const (
	DefaultHockeyStatsBaseURL   = "https://statsapi.web.nhl.com/api/v1"
	DefaultBaseballStatsBaseURL = "https://statsapi.mlb.com/api/v1"
)

// ScheduleConfig controls how a schedule+detail client reaches its upstream.
type ScheduleConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// ScheduleClient fetches the two-step schedule+detail feed shape: a day
// schedule listing game ids, then a live detail document per game.
type ScheduleClient struct {
	baseURL    string
	httpClient httpDoer
}

// NewScheduleClient constructs a schedule client rooted at baseURL.
func NewScheduleClient(cfg ScheduleConfig, defaultBaseURL string) *ScheduleClient {
	return &ScheduleClient{
		baseURL:    normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Schedule returns today's scheduled games, or an empty slice when the feed
// lists no dates.
func (c *ScheduleClient) Schedule(ctx context.Context) ([]ScheduledGame, error) {
	var payload struct {
		Dates []struct {
			Games []ScheduledGame `json:"games"`
		} `json:"dates"`
	}
	if err := getJSON(ctx, c.httpClient, c.baseURL+"/schedule", &payload); err != nil {
		return nil, err
	}
	if len(payload.Dates) == 0 {
		return []ScheduledGame{}, nil
	}
	return payload.Dates[0].Games, nil
}

// HockeyLinescore fetches the live linescore for one game.
func (c *ScheduleClient) HockeyLinescore(ctx context.Context, gameID int) (HockeyLinescore, error) {
	var payload HockeyLinescore
	url := fmt.Sprintf("%s/game/%d/linescore", c.baseURL, gameID)
	if err := getJSON(ctx, c.httpClient, url, &payload); err != nil {
		return HockeyLinescore{}, err
	}
	return payload, nil
}

// BaseballDetail fetches the live feed document for one game.
func (c *ScheduleClient) BaseballDetail(ctx context.Context, gameID int) (BaseballDetail, error) {
	var payload BaseballDetail
	url := fmt.Sprintf("%s/game/%d/feed/live", c.baseURL, gameID)
	if err := getJSON(ctx, c.httpClient, url, &payload); err != nil {
		return BaseballDetail{}, err
	}
	return payload, nil
}

// ScheduledGame is one schedule entry.
type ScheduledGame struct {
	GamePk   int            `json:"gamePk"`
	GameDate FeedTime       `json:"gameDate"`
	Teams    ScheduleTeams  `json:"teams"`
	Status   ScheduleStatus `json:"status"`
}

// ScheduleTeams holds the two sides keyed explicitly, never by array order.
type ScheduleTeams struct {
	Home ScheduleSide `json:"home"`
	Away ScheduleSide `json:"away"`
}

// ScheduleSide is one side of a scheduled game.
type ScheduleSide struct {
	Score int `json:"score"`
	Team  struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"team"`
}

// ScheduleStatus carries the feed's coarse and detailed state tokens.
type ScheduleStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

// HockeyLinescore is the live hockey detail shape.
type HockeyLinescore struct {
	CurrentPeriod              int    `json:"currentPeriod"`
	CurrentPeriodOrdinal       string `json:"currentPeriodOrdinal"`
	CurrentPeriodTimeRemaining string `json:"currentPeriodTimeRemaining"`
	Teams                      struct {
		Home HockeySide `json:"home"`
		Away HockeySide `json:"away"`
	} `json:"teams"`
}

// HockeySide is one side's live hockey state.
type HockeySide struct {
	Goals      int  `json:"goals"`
	PowerPlay  bool `json:"powerPlay"`
	NumSkaters int  `json:"numSkaters"`
}

// BaseballDetail is the live baseball detail shape.
type BaseballDetail struct {
	GameData struct {
		Status ScheduleStatus `json:"status"`
	} `json:"gameData"`
	LiveData struct {
		Linescore BaseballLinescore `json:"linescore"`
	} `json:"liveData"`
}

// BaseballLinescore is the live count/inning/base-runner state.
type BaseballLinescore struct {
	CurrentInning int  `json:"currentInning"`
	IsTopInning   bool `json:"isTopInning"`
	Balls         int  `json:"balls"`
	Strikes       int  `json:"strikes"`
	Outs          int  `json:"outs"`
	Teams         struct {
		Home BaseballSide `json:"home"`
		Away BaseballSide `json:"away"`
	} `json:"teams"`
	Offense struct {
		First  *baseRunner `json:"first"`
		Second *baseRunner `json:"second"`
		Third  *baseRunner `json:"third"`
	} `json:"offense"`
}

// BaseballSide is one side's run total.
type BaseballSide struct {
	Runs int `json:"runs"`
}

type baseRunner struct {
	ID int `json:"id"`
}
