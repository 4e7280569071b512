package pathfinder

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// DefaultMaxLegs bounds a mission when no ceiling is configured.
const DefaultMaxLegs = 10000

// Option configures a Runner.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	maxLegs        int
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
}

func defaultOptions() options {
	return options{
		logger:         slog.New(slog.DiscardHandler),
		maxLegs:        DefaultMaxLegs,
		meterProvider:  otel.GetMeterProvider(),
		tracerProvider: otel.GetTracerProvider(),
	}
}

// WithLogger sets the logger used by the runner and its navigator.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxLegs sets the leg ceiling after which a mission fails with
// ErrNavigationStalled. Non-positive values keep the default.
func WithMaxLegs(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLegs = n
		}
	}
}

// WithMeterProvider sets the provider for mission metrics.
// The global provider is used by default.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithTracerProvider sets the provider for mission spans.
// The global provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}
