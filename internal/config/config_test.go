package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		envPort, envProvider, envFixturesDir, envCacheTTL, envFetchTimeout,
		envWarmEnabled, envWarmInterval, envScoreboardURL, envStatsHockeyURL,
		envStatsBasebURL, envGolfLeague, envTeamDiagnostics,
		envMetricsPort, envMetricsOn, envOtelEndpoint, envOtelService, envOtelInsecure,
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.Provider != "live" {
		t.Fatalf("Provider = %q", cfg.Provider)
	}
	if cfg.FixturesDir != "data/fixtures" {
		t.Fatalf("FixturesDir = %q", cfg.FixturesDir)
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.WarmEnabled {
		t.Fatal("warming should default off")
	}
	if cfg.WarmInterval != 60*time.Second {
		t.Fatalf("WarmInterval = %v", cfg.WarmInterval)
	}
	if cfg.Feeds.ScoreboardBaseURL != "" || cfg.Feeds.HockeyStatsBaseURL != "" {
		t.Fatalf("feed URLs should default empty: %+v", cfg.Feeds)
	}
	if cfg.Feeds.GolfLeague != "pga" {
		t.Fatalf("GolfLeague = %q", cfg.Feeds.GolfLeague)
	}
	if cfg.TeamDiagnostics != "" {
		t.Fatalf("TeamDiagnostics = %q", cfg.TeamDiagnostics)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != "scoreboard-data-service" {
		t.Fatalf("ServiceName = %q", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(envPort, "8080")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envFixturesDir, "/tmp/slates")
	t.Setenv(envCacheTTL, "30s")
	t.Setenv(envFetchTimeout, "2s")
	t.Setenv(envWarmEnabled, "true")
	t.Setenv(envWarmInterval, "15s")
	t.Setenv(envScoreboardURL, "http://localhost:9999")
	t.Setenv(envGolfLeague, "lpga")
	t.Setenv(envTeamDiagnostics, "/tmp/teams.log")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()
	if cfg.Port != "8080" || cfg.Provider != "fixture" || cfg.FixturesDir != "/tmp/slates" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.CacheTTL != 30*time.Second || cfg.FetchTimeout != 2*time.Second {
		t.Fatalf("durations = %v/%v", cfg.CacheTTL, cfg.FetchTimeout)
	}
	if !cfg.WarmEnabled || cfg.WarmInterval != 15*time.Second {
		t.Fatalf("warm = %v/%v", cfg.WarmEnabled, cfg.WarmInterval)
	}
	if cfg.Feeds.ScoreboardBaseURL != "http://localhost:9999" {
		t.Fatalf("ScoreboardBaseURL = %q", cfg.Feeds.ScoreboardBaseURL)
	}
	if cfg.Feeds.GolfLeague != "lpga" {
		t.Fatalf("GolfLeague = %q", cfg.Feeds.GolfLeague)
	}
	if cfg.TeamDiagnostics != "/tmp/teams.log" {
		t.Fatalf("TeamDiagnostics = %q", cfg.TeamDiagnostics)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("metrics should be disabled")
	}
}

func TestLoadRejectsBadDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv(envCacheTTL, "not-a-duration")
	t.Setenv(envWarmInterval, "-5s")

	cfg := Load()
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("CacheTTL = %v, want default", cfg.CacheTTL)
	}
	if cfg.WarmInterval != 60*time.Second {
		t.Fatalf("WarmInterval = %v, want default", cfg.WarmInterval)
	}
}
