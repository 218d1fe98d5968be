package hockey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/feeds"
	"scoreboard-data-service/internal/teams"
	"scoreboard-data-service/internal/testutil"
)

func linescore(period int, ordinal, remaining string, homeGoals, awayGoals int) feeds.HockeyLinescore {
	var ls feeds.HockeyLinescore
	ls.CurrentPeriod = period
	ls.CurrentPeriodOrdinal = ordinal
	ls.CurrentPeriodTimeRemaining = remaining
	ls.Teams.Home.Goals = homeGoals
	ls.Teams.Away.Goals = awayGoals
	return ls
}

func TestApplyClockState(t *testing.T) {
	cases := []struct {
		name        string
		linescore   feeds.HockeyLinescore
		wantStatus  domain.Status
		wantOrdinal string
	}{
		{
			name:        "final",
			linescore:   linescore(3, "3rd", "Final", 4, 2),
			wantStatus:  domain.StatusEnd,
			wantOrdinal: "3rd",
		},
		{
			name:        "end of third with lead is final",
			linescore:   linescore(3, "3rd", "END", 3, 2),
			wantStatus:  domain.StatusEnd,
			wantOrdinal: "3rd",
		},
		{
			name:        "end of third tied is intermission before overtime",
			linescore:   linescore(3, "3rd", "END", 2, 2),
			wantStatus:  domain.StatusIntermission,
			wantOrdinal: "3rd INT",
		},
		{
			name:        "end of second is intermission",
			linescore:   linescore(2, "2nd", "END", 1, 0),
			wantStatus:  domain.StatusIntermission,
			wantOrdinal: "2nd INT",
		},
		{
			name:        "full clock after first period is intermission",
			linescore:   linescore(2, "2nd", "20:00", 1, 1),
			wantStatus:  domain.StatusIntermission,
			wantOrdinal: "2nd INT",
		},
		{
			name:        "running clock is active",
			linescore:   linescore(1, "1st", "12:34", 0, 0),
			wantStatus:  domain.StatusActive,
			wantOrdinal: "1st",
		},
		{
			name:        "full clock in first period is pregame",
			linescore:   linescore(1, "1st", "20:00", 0, 0),
			wantStatus:  domain.StatusPregame,
			wantOrdinal: "1st",
		},
		{
			name:        "no linescore detail yet is pregame",
			linescore:   linescore(0, "", "", 0, 0),
			wantStatus:  domain.StatusPregame,
			wantOrdinal: "1st",
		},
		{
			name:        "overtime end with winner is final",
			linescore:   linescore(4, "OT", "END", 3, 2),
			wantStatus:  domain.StatusEnd,
			wantOrdinal: "OT",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			common := domain.Common{Status: domain.StatusPregame, Ordinal: "1st"}
			common.SetScores(tc.linescore.Teams.Home.Goals, tc.linescore.Teams.Away.Goals)
			applyClockState(&common, tc.linescore)
			if common.Status != tc.wantStatus {
				t.Fatalf("status = %q, want %q", common.Status, tc.wantStatus)
			}
			if common.Ordinal != tc.wantOrdinal {
				t.Fatalf("ordinal = %q, want %q", common.Ordinal, tc.wantOrdinal)
			}
		})
	}
}

func TestIsCalledOff(t *testing.T) {
	cases := []struct {
		state string
		want  bool
	}{
		{"Postponed", true},
		{"Cancelled", true},
		{"Canceled", true},
		{"Scheduled", false},
		{"In Progress", false},
		{"Final", false},
	}
	for _, tc := range cases {
		status := feeds.ScheduleStatus{DetailedState: tc.state}
		if got := isCalledOff(status); got != tc.want {
			t.Fatalf("isCalledOff(%q) = %v, want %v", tc.state, got, tc.want)
		}
	}
}

func scheduleFixture(start time.Time) string {
	return fmt.Sprintf(`{"dates":[{"games":[{
		"gamePk": 2023020001,
		"gameDate": %q,
		"status": {"abstractGameState": "Live", "detailedState": "In Progress"},
		"teams": {
			"home": {"score": 2, "team": {"id": 3, "name": "New York Rangers"}},
			"away": {"score": 1, "team": {"id": 6, "name": "Boston Bruins"}}
		}
	}]}]}`, start.Format(time.RFC3339))
}

const linescoreFixture = `{
	"currentPeriod": 2,
	"currentPeriodOrdinal": "2nd",
	"currentPeriodTimeRemaining": "08:15",
	"teams": {
		"home": {"goals": 2, "powerPlay": true, "numSkaters": 5},
		"away": {"goals": 1, "powerPlay": false, "numSkaters": 4}
	}
}`

func TestFetchGamesLive(t *testing.T) {
	start := time.Now().UTC().Add(-time.Hour)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/schedule":
			fmt.Fprint(w, scheduleFixture(start))
		case "/game/2023020001/linescore":
			fmt.Fprint(w, linescoreFixture)
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	client := feeds.NewScheduleClient(feeds.ScheduleConfig{BaseURL: upstream.URL}, upstream.URL)
	provider := New(client, teams.NewResolver(teams.NHL, nil), nil)

	games, err := provider.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}

	game, ok := games[0].(*domain.HockeyGame)
	if !ok {
		t.Fatalf("expected *HockeyGame, got %T", games[0])
	}
	if game.Common.Status != domain.StatusActive {
		t.Fatalf("status = %q", game.Common.Status)
	}
	if game.Common.Ordinal != "2nd" {
		t.Fatalf("ordinal = %q", game.Common.Ordinal)
	}
	if game.Common.HomeScore != 2 || game.Common.AwayScore != 1 {
		t.Fatalf("scores = %d/%d", game.Common.HomeScore, game.Common.AwayScore)
	}
	if !game.HomePowerplay || game.AwayPowerplay {
		t.Fatal("power play flags lost")
	}
	if game.HomeSkaters != 5 || game.AwaySkaters != 4 {
		t.Fatalf("skaters = %d/%d", game.HomeSkaters, game.AwaySkaters)
	}
	if game.Common.HomeTeam.Abbreviation != "NYR" {
		t.Fatalf("home team not resolved from registry: %+v", game.Common.HomeTeam)
	}

	body, err := json.Marshal(game)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `"type":"Hockey"`; !strings.Contains(string(body), want) {
		t.Fatalf("wire body missing %s: %s", want, body)
	}
}

func TestFetchGamesDropsFailedDetail(t *testing.T) {
	start := time.Now().UTC()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/schedule" {
			fmt.Fprint(w, scheduleFixture(start))
			return
		}
		http.Error(w, "upstream broke", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := feeds.NewScheduleClient(feeds.ScheduleConfig{BaseURL: upstream.URL}, upstream.URL)
	logger, _ := testutil.NewBufferLogger()
	provider := New(client, teams.NewResolver(teams.NHL, nil), logger)

	games, err := provider.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("batch must survive a single game failure: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected failed game dropped, got %d games", len(games))
	}
}

func TestCommonFromScheduleDropsCalledOff(t *testing.T) {
	provider := New(nil, teams.NewResolver(teams.NHL, nil), nil)
	provider.now = testutil.NowAt(time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC))

	entry := feeds.ScheduledGame{
		GamePk:   1,
		GameDate: feeds.FeedTime{Time: provider.now()},
		Status:   feeds.ScheduleStatus{DetailedState: "Postponed"},
	}
	if _, keep := provider.commonFromSchedule(entry); keep {
		t.Fatal("postponed game must be dropped")
	}
}

