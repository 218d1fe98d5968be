package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envFixturesDir     = "FIXTURES_DIR"
	envCacheTTL        = "CACHE_TTL"
	envFetchTimeout    = "FETCH_TIMEOUT"
	envWarmEnabled     = "WARM_ENABLED"
	envWarmInterval    = "WARM_INTERVAL"
	envScoreboardURL   = "SCOREBOARD_BASE_URL"
	envStatsHockeyURL  = "HOCKEY_STATS_BASE_URL"
	envStatsBasebURL   = "BASEBALL_STATS_BASE_URL"
	envGolfLeague      = "GOLF_LEAGUE"
	envTeamDiagnostics = "TEAM_DIAGNOSTICS_FILE"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultProvider    = "live"
	defaultFixturesDir = "data/fixtures"
	// Cache entries outlive one upstream scoreboard revision but not two, so
	// clients see updates within a minute without hammering upstream.
	defaultCacheTTL = 60 * Duration(time.Second)
	// Per-sport fetch deadline; the slowest sport bounds the whole request.
	defaultFetchTimeout = 10 * Duration(time.Second)
	defaultWarmEnabled  = false
	defaultWarmInterval = 60 * Duration(time.Second)
	defaultGolfLeague   = "pga"
	defaultMetricsPort  = "9090"
)
