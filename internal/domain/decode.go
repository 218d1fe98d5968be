package domain

import (
	"encoding/json"
	"fmt"
)

// GamesPayload is the {"games": [...]} body used by responses and fixtures.
type GamesPayload struct {
	Games []Game `json:"games"`
}

// Response is the top-level service envelope.
type Response struct {
	Data GamesPayload `json:"data"`
}

// UnmarshalJSON decodes each game into its variant via the type discriminant.
func (p *GamesPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Games []json.RawMessage `json:"games"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	games := make([]Game, 0, len(raw.Games))
	for _, msg := range raw.Games {
		game, err := UnmarshalGame(msg)
		if err != nil {
			return err
		}
		games = append(games, game)
	}
	p.Games = games
	return nil
}

// UnmarshalGame decodes one canonical game by its "type" discriminant. The
// variant set is closed: an unknown discriminant is an error, never a silent
// default.
func UnmarshalGame(data []byte) (Game, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}

	var game Game
	switch probe.Type {
	case KindHockey:
		game = &HockeyGame{}
	case KindBaseball:
		game = &BaseballGame{}
	case KindBasketball, KindCollegeBasketball:
		game = &BasketballGame{}
	case KindFootball, KindCollegeFootball:
		game = &FootballGame{}
	case KindGolf:
		game = &GolfGame{}
	default:
		return nil, fmt.Errorf("unknown game type %q", probe.Type)
	}

	if err := json.Unmarshal(data, game); err != nil {
		return nil, err
	}
	return game, nil
}
