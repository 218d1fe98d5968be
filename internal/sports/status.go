package sports

import (
	"fmt"

	"scoreboard-data-service/internal/domain"
)

// statusTable is the fixed mapping from raw feed status tokens to canonical
// statuses. Tokens mapping to an empty status are displayable-as-nothing:
// the record is dropped without error.
var statusTable = map[string]domain.Status{
	"STATUS_IN_PROGRESS":   domain.StatusActive,
	"STATUS_FINAL":         domain.StatusEnd,
	"STATUS_PLAY_COMPLETE": domain.StatusEnd,
	"STATUS_SCHEDULED":     domain.StatusPregame,
	"STATUS_END_PERIOD":    domain.StatusIntermission,
	"STATUS_HALFTIME":      domain.StatusIntermission,
	"STATUS_DELAYED":       domain.StatusIntermission,
	"STATUS_POSTPONED":     "",
	"STATUS_CANCELED":      "",
}

// TranslateStatus maps a raw status token onto the canonical set. keep=false
// with a nil error means the record must be excluded entirely (postponed or
// canceled). A token outside the table is an error for that single record:
// showing a guessed status would be worse than showing no game, so there is
// no default.
func TranslateStatus(token string) (status domain.Status, keep bool, err error) {
	mapped, ok := statusTable[token]
	if !ok {
		return "", false, fmt.Errorf("unmapped status token %q", token)
	}
	if mapped == "" {
		return "", false, nil
	}
	return mapped, true, nil
}
