package domain

// Status mirrors the shared contract for game lifecycle states.
type Status string

const (
	StatusPregame      Status = "PREGAME"
	StatusActive       Status = "ACTIVE"
	StatusIntermission Status = "INTERMISSION"
	StatusEnd          Status = "END"
)

// SportID identifies a sport on the wire. Values are part of the client
// contract and must not be renumbered.
type SportID int

const (
	SportHockey            SportID = 0
	SportBaseball          SportID = 1
	SportCollegeBasketball SportID = 2
	SportBasketball        SportID = 3
	SportFootball          SportID = 4
	SportCollegeFootball   SportID = 5
	SportGolf              SportID = 6
)

var sportKeys = map[SportID]string{
	SportHockey:            "hockey",
	SportBaseball:          "baseball",
	SportCollegeBasketball: "college-basketball",
	SportBasketball:        "basketball",
	SportFootball:          "football",
	SportCollegeFootball:   "college-football",
	SportGolf:              "golf",
}

// Key returns the URL/cache key for the sport.
func (s SportID) Key() string {
	return sportKeys[s]
}

// ParseSportKey maps a URL key back to a SportID.
func ParseSportKey(key string) (SportID, bool) {
	for id, k := range sportKeys {
		if k == key {
			return id, true
		}
	}
	return 0, false
}

// AllSports is the fixed fetch order for the "all" endpoint. Golf first: its
// leaderboard fetch is the slowest and benefits from the longest overlap.
func AllSports() []SportID {
	return []SportID{
		SportGolf,
		SportCollegeBasketball,
		SportBasketball,
		SportHockey,
		SportBaseball,
		SportFootball,
		SportCollegeFootball,
	}
}

// Team is the normalized team shape. Immutable once created.
type Team struct {
	ID             string `json:"id"`
	Location       string `json:"location"`
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	Abbreviation   string `json:"abbreviation"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
}

// Common carries the fields shared by every sport's game.
type Common struct {
	SportID   SportID `json:"sport_id"`
	HomeTeam  Team    `json:"home_team"`
	AwayTeam  Team    `json:"away_team"`
	HomeScore int     `json:"home_score"`
	AwayScore int     `json:"away_score"`
	Status    Status  `json:"status"`
	Ordinal   string  `json:"ordinal"`
	StartTime string  `json:"start_time"`
	ID        int     `json:"id"`
}

// SetScores applies the defensive score floor: feeds occasionally report
// negative values and those must never reach clients.
func (c *Common) SetScores(home, away int) {
	c.HomeScore = ClampScore(home)
	c.AwayScore = ClampScore(away)
}

// ClampScore floors a count at zero.
func ClampScore(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
