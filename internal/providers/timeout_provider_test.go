package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"scoreboard-data-service/internal/domain"
	"scoreboard-data-service/internal/testutil"
)

func TestTimeoutProviderPassesThrough(t *testing.T) {
	want := []domain.Game{&domain.BasketballGame{Type: domain.KindBasketball}}
	inner := GameProviderFunc(func(ctx context.Context) ([]domain.Game, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatal("expected a deadline on the inner context")
		}
		return want, nil
	})

	provider := NewTimeoutProvider(inner, nil, domain.SportBasketball, time.Second)
	games, err := provider.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("FetchGames: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
}

func TestTimeoutProviderCancelsSlowFetch(t *testing.T) {
	inner := GameProviderFunc(func(ctx context.Context) ([]domain.Game, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return nil, errors.New("should have been cancelled")
		}
	})

	logger, buf := testutil.NewBufferLogger()
	provider := NewTimeoutProvider(inner, logger, domain.SportHockey, 10*time.Millisecond)

	_, err := provider.FetchGames(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if !strings.Contains(buf.String(), "timed out") {
		t.Fatalf("expected a timeout warning, log: %s", buf.String())
	}
}

func TestTimeoutProviderPropagatesInnerError(t *testing.T) {
	innerErr := errors.New("upstream 502")
	inner := GameProviderFunc(func(ctx context.Context) ([]domain.Game, error) {
		return nil, innerErr
	})

	logger, buf := testutil.NewBufferLogger()
	provider := NewTimeoutProvider(inner, logger, domain.SportHockey, time.Second)

	_, err := provider.FetchGames(context.Background())
	if !errors.Is(err, innerErr) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("non-timeout failures must not warn, log: %s", buf.String())
	}
}

func TestFetchErrorWrapsSport(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&FetchError{Sport: domain.SportGolf, Err: cause})

	if !errors.Is(err, cause) {
		t.Fatal("expected unwrap to reach the cause")
	}
	fetchErr, ok := AsFetchError(err)
	if !ok {
		t.Fatal("AsFetchError failed")
	}
	if fetchErr.Sport != domain.SportGolf {
		t.Fatalf("sport = %v", fetchErr.Sport)
	}
	if !strings.Contains(err.Error(), "golf") {
		t.Fatalf("error text should name the sport: %s", err.Error())
	}
}
