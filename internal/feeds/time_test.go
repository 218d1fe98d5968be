package feeds

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFeedTimeLayouts(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", `"2024-03-10T19:05:00Z"`, time.Date(2024, 3, 10, 19, 5, 0, 0, time.UTC)},
		{"minute precision", `"2024-03-10T19:05Z"`, time.Date(2024, 3, 10, 19, 5, 0, 0, time.UTC)},
		{"offset", `"2024-03-10T14:05:00-05:00"`, time.Date(2024, 3, 10, 14, 5, 0, 0, time.FixedZone("", -5*3600))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FeedTime
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &ft))
			require.True(t, ft.Equal(tc.want), "got %v, want %v", ft.Time, tc.want)
		})
	}
}

func TestFeedTimeEmptyAndNull(t *testing.T) {
	for _, raw := range []string{`""`, `null`} {
		var ft FeedTime
		require.NoError(t, json.Unmarshal([]byte(raw), &ft))
		require.True(t, ft.IsZero(), "%s should leave the zero time, got %v", raw, ft.Time)
	}
}

func TestFeedTimeGarbage(t *testing.T) {
	var ft FeedTime
	require.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ft))
}
