package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetch("hockey", 4, 10*time.Millisecond, nil)
	rec.RecordFetch("hockey", 0, 15*time.Millisecond, errors.New("boom"))

	if got := rec.Fetches("hockey"); got != 2 {
		t.Fatalf("expected 2 fetches, got %d", got)
	}
	if got := rec.Errors("hockey"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("hockey")
	if snap.LastFetchLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastFetchLatency)
	}
	if snap.LastGameCount != 4 {
		t.Fatalf("failed fetch must not clobber the last game count, got %d", snap.LastGameCount)
	}
}

func TestRecorderTracksCacheTraffic(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCacheMiss("golf")
	rec.RecordCacheHit("golf")
	rec.RecordCacheHit("golf")

	if got := rec.CacheHits("golf"); got != 2 {
		t.Fatalf("expected 2 hits, got %d", got)
	}
	if got := rec.CacheMisses("golf"); got != 1 {
		t.Fatalf("expected 1 miss, got %d", got)
	}
	if got := rec.CacheHits("hockey"); got != 0 {
		t.Fatalf("sports must be tracked independently, got %d", got)
	}
}

func TestRecorderNilSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("hockey", 1, time.Millisecond, nil)
	rec.RecordCacheHit("hockey")
	rec.RecordCacheMiss("hockey")
	rec.RecordHTTPRequest("GET", "/all", 200, time.Millisecond)
	rec.RecordWarmCycle(time.Millisecond, nil)

	if snap := rec.Snapshot("hockey"); snap != (Snapshot{}) {
		t.Fatalf("nil recorder snapshot = %+v", snap)
	}
}
