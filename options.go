package fuzzgo

import (
	"log/slog"

	"github.com/hupe1980/fuzzgo/resource"
)

type options struct {
	workers          int
	chunkSize        int
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

// Option configures Matcher constructor behavior.
type Option func(*options)

// WithWorkers configures the default number of scoring workers for queries
// on this Matcher. SearchBuilder.Workers overrides it per query.
//
// Defaults to runtime.GOMAXPROCS(0). Values below 1 are rejected at query
// time with ErrInvalidWorkerCount rather than silently clamped.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithChunkSize configures how many lines a worker claims per dispatch.
// Zero keeps the engine default. Tune only when profiling shows cursor
// contention or load imbalance.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithMetricsCollector configures a metrics collector for monitoring queries.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &fuzzgo.BasicMetricsCollector{}
//	m := fuzzgo.New(lines, fuzzgo.WithMetricsCollector(metrics))
//	// ... run queries ...
//	stats := metrics.GetStats()
//	fmt.Printf("Queries: %d, Avg latency: %dns\n", stats.MatchCount, stats.MatchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for queries.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := fuzzgo.NewJSONLogger(slog.LevelInfo)
//	m := fuzzgo.New(lines, fuzzgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController bounds the transient memory used when scoring
// candidates too long for the per-worker scratch arena, and rate-limits
// ingest reads routed through the same controller.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		workers:          defaultWorkers(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
