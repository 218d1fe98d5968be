package providers

import (
	"errors"
	"fmt"

	"scoreboard-data-service/internal/domain"
)

// FetchError attributes an upstream failure to the sport whose fetch
// produced it, so failures stay isolated per sport when fetches fan out.
type FetchError struct {
	Sport domain.SportID
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Sport.Key(), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
