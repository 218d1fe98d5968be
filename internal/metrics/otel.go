package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "scoreboard-data-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx            context.Context
	meter          metric.Meter
	requests       metric.Int64Counter
	requestLatency metric.Float64Histogram
	fetches        metric.Int64Counter
	fetchErrors    metric.Int64Counter
	fetchLatency   metric.Float64Histogram
	fetchedGames   metric.Int64Counter
	cacheHits      metric.Int64Counter
	cacheMisses    metric.Int64Counter
	warmCycles     metric.Int64Counter
	warmErrors     metric.Int64Counter
	warmLatency    metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("scoreboard-data-service")
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	fetches, err := meter.Int64Counter("sport_fetches_total")
	if err != nil {
		return nil, err
	}
	fetchErrors, err := meter.Int64Counter("sport_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	fetchLatency, err := meter.Float64Histogram("sport_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	fetchedGames, err := meter.Int64Counter("sport_fetched_games_total")
	if err != nil {
		return nil, err
	}
	cacheHits, err := meter.Int64Counter("cache_hits_total")
	if err != nil {
		return nil, err
	}
	cacheMisses, err := meter.Int64Counter("cache_misses_total")
	if err != nil {
		return nil, err
	}
	warmCycles, err := meter.Int64Counter("warm_cycles_total")
	if err != nil {
		return nil, err
	}
	warmErrors, err := meter.Int64Counter("warm_errors_total")
	if err != nil {
		return nil, err
	}
	warmLatency, err := meter.Float64Histogram("warm_cycle_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:            ctx,
		meter:          meter,
		requests:       requests,
		requestLatency: requestLatency,
		fetches:        fetches,
		fetchErrors:    fetchErrors,
		fetchLatency:   fetchLatency,
		fetchedGames:   fetchedGames,
		cacheHits:      cacheHits,
		cacheMisses:    cacheMisses,
		warmCycles:     warmCycles,
		warmErrors:     warmErrors,
		warmLatency:    warmLatency,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatency, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordFetch(sport string, games int, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrSport, sport)}
	o.recordCounter(o.fetches, 1, attrs...)
	o.recordHistogram(o.fetchLatency, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.fetchErrors, 1, attrs...)
		return
	}
	o.recordCounter(o.fetchedGames, int64(games), attrs...)
}

func (o *otelInstruments) recordCache(sport string, hit bool) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrSport, sport)}
	if hit {
		o.recordCounter(o.cacheHits, 1, attrs...)
		return
	}
	o.recordCounter(o.cacheMisses, 1, attrs...)
}

func (o *otelInstruments) recordWarmCycle(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.warmCycles, 1)
	o.recordHistogram(o.warmLatency, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.warmErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
