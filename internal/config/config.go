package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	Provider        string
	FixturesDir     string
	CacheTTL        Duration
	FetchTimeout    Duration
	WarmEnabled     bool
	WarmInterval    Duration
	Feeds           FeedsConfig
	TeamDiagnostics string
	Metrics         MetricsConfig
}

// FeedsConfig holds upstream base URLs. Empty values fall back to each
// client's production default.
type FeedsConfig struct {
	ScoreboardBaseURL    string
	HockeyStatsBaseURL   string
	BaseballStatsBaseURL string
	GolfLeague           string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		Provider:        envOrDefault(envProvider, defaultProvider),
		FixturesDir:     envOrDefault(envFixturesDir, defaultFixturesDir),
		CacheTTL:        durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		FetchTimeout:    durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		WarmEnabled:     boolEnvOrDefault(envWarmEnabled, defaultWarmEnabled),
		WarmInterval:    durationEnvOrDefault(envWarmInterval, defaultWarmInterval),
		TeamDiagnostics: envOrDefault(envTeamDiagnostics, ""),
		Feeds: FeedsConfig{
			ScoreboardBaseURL:    envOrDefault(envScoreboardURL, ""),
			HockeyStatsBaseURL:   envOrDefault(envStatsHockeyURL, ""),
			BaseballStatsBaseURL: envOrDefault(envStatsBasebURL, ""),
			GolfLeague:           envOrDefault(envGolfLeague, defaultGolfLeague),
		},
		Metrics: loadMetrics(),
	}
}
