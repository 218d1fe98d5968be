package domain

// Game is the closed set of per-sport variants. Each variant embeds Common and
// is discriminated on the wire by its "type" field.
type Game interface {
	CommonData() *Common
	Kind() string
}

// Wire discriminants for the game variants.
const (
	KindHockey            = "Hockey"
	KindBaseball          = "Baseball"
	KindBasketball        = "Basketball"
	KindCollegeBasketball = "CollegeBasketball"
	KindFootball          = "Football"
	KindCollegeFootball   = "CollegeFootball"
	KindGolf              = "Golf"
)

// HockeyGame adds power play and skater-strength state.
type HockeyGame struct {
	Type          string `json:"type"`
	Common        Common `json:"common"`
	AwayPowerplay bool   `json:"away_powerplay"`
	HomePowerplay bool   `json:"home_powerplay"`
	AwaySkaters   int    `json:"away_players"`
	HomeSkaters   int    `json:"home_players"`
}

func (g *HockeyGame) CommonData() *Common { return &g.Common }
func (g *HockeyGame) Kind() string        { return KindHockey }

// BaseballGame adds the count, inning, and base runners.
type BaseballGame struct {
	Type        string `json:"type"`
	Common      Common `json:"common"`
	Balls       int    `json:"balls"`
	Outs        int    `json:"outs"`
	Strikes     int    `json:"strikes"`
	Inning      int    `json:"inning"`
	IsInningTop bool   `json:"is_inning_top"`
	OnFirst     bool   `json:"onFirst"`
	OnSecond    bool   `json:"onSecond"`
	OnThird     bool   `json:"onThird"`
}

func (g *BaseballGame) CommonData() *Common { return &g.Common }
func (g *BaseballGame) Kind() string        { return KindBaseball }

// BasketballGame has no sport-specific fields beyond Common. The Type field
// distinguishes pro from college on the wire.
type BasketballGame struct {
	Type   string `json:"type"`
	Common Common `json:"common"`
}

func (g *BasketballGame) CommonData() *Common { return &g.Common }
func (g *BasketballGame) Kind() string        { return g.Type }

// FootballExtra is the situational football state nested under extra_data.
type FootballExtra struct {
	TimeRemaining  string `json:"time_remaining"`
	BallPosition   string `json:"ball_position"`
	DownString     string `json:"down_string"`
	HomePossession *bool  `json:"home_possession,omitempty"`
}

// FootballGame covers both pro and college football, distinguished by Type.
type FootballGame struct {
	Type   string        `json:"type"`
	Common Common        `json:"common"`
	Extra  FootballExtra `json:"extra_data"`
}

func (g *FootballGame) CommonData() *Common { return &g.Common }
func (g *FootballGame) Kind() string        { return g.Type }

// GolfPlayer is one leaderboard row.
type GolfPlayer struct {
	DisplayName string `json:"display_name"`
	Position    int    `json:"position"`
	Score       string `json:"score"`
}

// GolfGame carries the tournament name and the top of the leaderboard. The
// home/away teams in Common are empty placeholders.
type GolfGame struct {
	Type    string       `json:"type"`
	Common  Common       `json:"common"`
	Name    string       `json:"name"`
	Players []GolfPlayer `json:"players"`
}

func (g *GolfGame) CommonData() *Common { return &g.Common }
func (g *GolfGame) Kind() string        { return KindGolf }
