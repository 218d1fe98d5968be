package server

import (
	"context"
	"log/slog"
	"net/http"

	"scoreboard-data-service/internal/aggregator"
	"scoreboard-data-service/internal/cache"
	"scoreboard-data-service/internal/config"
	httpserver "scoreboard-data-service/internal/http"
	"scoreboard-data-service/internal/logging"
	"scoreboard-data-service/internal/metrics"
	"scoreboard-data-service/internal/poller"
	"scoreboard-data-service/internal/teams"
)

var metricsSetup = metrics.Setup

// Warmer defines the minimal cache warmer behavior needed by the server.
type Warmer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	aggregator    *aggregator.Aggregator
	teamSink      *teams.FileSink
	httpServer    httpServer
	metricsServer httpServer
	warmer        Warmer
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and cache wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	var sink *teams.FileSink
	var diagSink teams.DiagnosticSink
	if cfg.TeamDiagnostics != "" {
		sink = teams.NewFileSink(cfg.TeamDiagnostics, logger)
		diagSink = sink
	}

	set := buildProviders(cfg, logger, diagSink)
	gameCache := cache.New(cfg.CacheTTL)
	agg := aggregator.New(set, gameCache, logger, recorder)

	var warmer Warmer
	var statusFn func() poller.Status
	if cfg.WarmEnabled {
		plr := poller.New(agg, logger, recorder, cfg.WarmInterval)
		warmer = plr
		statusFn = plr.Status
	}

	httpSrv := buildHTTPServer(cfg, agg, logger, recorder, statusFn)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		aggregator:    agg,
		teamSink:      sink,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		warmer:        warmer,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, agg *aggregator.Aggregator, httpSrv httpServer, warmer Warmer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		aggregator: agg,
		httpServer: httpSrv,
		warmer:     warmer,
	}
}

func buildHTTPServer(cfg config.Config, agg *aggregator.Aggregator, logger *slog.Logger, recorder *metrics.Recorder, statusFn func() poller.Status) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := httpserver.NewHandler(agg, logger, statusFn)
	router := httpserver.NewRouter(handler, logger, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the warmer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.warmer != nil {
		s.warmer.Start(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if s.warmer != nil {
		if err := s.warmer.Stop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Error("failed to stop cache warmer", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.teamSink != nil {
		s.teamSink.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
