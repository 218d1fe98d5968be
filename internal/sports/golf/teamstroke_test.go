package golf

import (
	"testing"

	"scoreboard-data-service/internal/feeds"
)

const rawScoreboard = `QBE SHOOTOUT
1 Kuchar/Snedeker -12
2 Thompson/Henderson -10
3 Fitzpatrick/Fitzpatrick -9
T4 Cauley/Trainer -8
5 Hoffman/Kizzire -7
`

func TestParseTeamStroke(t *testing.T) {
	players, complete := parseTeamStroke(rawScoreboard)
	if complete {
		t.Fatal("scoreboard without COMPLETE marker must not read as complete")
	}
	if len(players) != 4 {
		t.Fatalf("expected 4 ranked pairs, got %d", len(players))
	}

	leader := players[0]
	if leader.Position != 1 {
		t.Fatalf("leader position = %d", leader.Position)
	}
	if leader.DisplayName != "KUCHA/SNEDE" {
		t.Fatalf("leader pair = %q", leader.DisplayName)
	}
	if leader.Score != "-12" {
		t.Fatalf("leader score = %q", leader.Score)
	}

	// The tied row has a T prefix and does not match the rank pattern.
	for _, p := range players {
		if p.Position == 4 {
			t.Fatal("tied row should have been skipped")
		}
	}
}

func TestParseTeamStrokeStopsAtFivePairs(t *testing.T) {
	raw := `EVENT
1 Aa/Bb -9
2 Cc/Dd -8
3 Ee/Ff -7
4 Gg/Hh -6
5 Ii/Jj -5
6 Kk/Ll -4
`
	players, _ := parseTeamStroke(raw)
	if len(players) != 5 {
		t.Fatalf("expected parsing capped at 5 pairs, got %d", len(players))
	}
}

func TestParseTeamStrokeCompleteMarker(t *testing.T) {
	_, complete := parseTeamStroke("FINAL ROUND COMPLETE\n1 Aa/Bb -9\n")
	if !complete {
		t.Fatal("expected COMPLETE marker detected")
	}
}

func TestTruncateName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Snedeker", "SNEDE"},
		{"Gay", "GAY"},
		{"Kuchar,", "KUCHA"},
	}
	for _, tc := range cases {
		if got := truncateName(tc.in); got != tc.want {
			t.Fatalf("truncateName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsTeamStroke(t *testing.T) {
	var comp feeds.GolfCompetition
	comp.ScoringSystem.Name = "Team Stroke"
	if !isTeamStroke(comp) {
		t.Fatal("expected team stroke detected")
	}
	comp.ScoringSystem.Name = "Stroke"
	if isTeamStroke(comp) {
		t.Fatal("plain stroke play misdetected")
	}
}
