// Package telemetry sets up OpenTelemetry tracing for the command-line tools
// and starts the spans they record.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName   = "github.com/amp-labs/amp-sorted"
	defaultServiceVersion = "dev"
	defaultTimeout        = 5 * time.Second
)

var (
	tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals
	loggerProvider *sdklog.LoggerProvider   //nolint:gochecknoglobals
)

// Config holds the tracing settings.
type Config struct {
	Enabled        bool   `yaml:"enabled"`
	ServiceName    string `yaml:"serviceName"`
	ServiceVersion string `yaml:"serviceVersion"`
	Endpoint       string `yaml:"endpoint"`
	// LogsEndpoint, if set, also receives log records over OTLP/HTTP.
	LogsEndpoint string        `yaml:"logsEndpoint"`
	Timeout      time.Duration `yaml:"timeout"`
}

// ApplyEnv overlays the standard OTEL_* environment variables on cfg.
func (cfg Config) ApplyEnv() (Config, error) {
	if value, ok := os.LookupEnv("OTEL_ENABLED"); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return cfg, fmt.Errorf("OTEL_ENABLED: %w", err)
		}

		cfg.Enabled = enabled
	}

	if value, ok := os.LookupEnv("OTEL_SERVICE_NAME"); ok {
		cfg.ServiceName = value
	}

	if value, ok := os.LookupEnv("OTEL_SERVICE_VERSION"); ok {
		cfg.ServiceVersion = value
	}

	if value, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"); ok {
		cfg.Endpoint = value
	}

	if value, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_LOGS_ENDPOINT"); ok {
		cfg.LogsEndpoint = value
	}

	if value, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return cfg, fmt.Errorf("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT: %w", err)
		}

		cfg.Timeout = timeout
	}

	return cfg, nil
}

// Initialize installs a global tracer provider exporting to cfg.Endpoint
// over OTLP/HTTP. It does nothing when tracing is disabled or no endpoint is
// configured, in which case spans are no-ops.
func Initialize(ctx context.Context, cfg Config) error {
	if !cfg.Enabled {
		slog.DebugContext(ctx, "OpenTelemetry tracing is disabled")

		return nil
	}

	if cfg.Endpoint == "" {
		slog.WarnContext(ctx, "OpenTelemetry endpoint not configured, tracing will be disabled")

		return nil
	}

	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = defaultServiceVersion
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	if cfg.LogsEndpoint != "" {
		logExporter, err := otlploghttp.New(ctx,
			otlploghttp.WithEndpointURL(cfg.LogsEndpoint),
			otlploghttp.WithTimeout(cfg.Timeout),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP log exporter: %w", err)
		}

		loggerProvider = sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)),
			sdklog.WithResource(res),
		)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.InfoContext(ctx, "OpenTelemetry tracing initialized",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"endpoint", cfg.Endpoint,
	)

	return nil
}

// LogHandler returns an slog handler that exports records through the log
// provider set up by Initialize, or nil when log export is off.
func LogHandler() slog.Handler {
	if loggerProvider == nil {
		return nil
	}

	return otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(loggerProvider))
}

// Shutdown flushes and stops the providers installed by Initialize, if any.
func Shutdown(ctx context.Context) error {
	var errs []error

	if loggerProvider != nil {
		errs = append(errs, loggerProvider.Shutdown(ctx))
		loggerProvider = nil
	}

	if tracerProvider != nil {
		errs = append(errs, tracerProvider.Shutdown(ctx))
		tracerProvider = nil
	}

	return errors.Join(errs...)
}

// Start opens a span named name on the global tracer provider.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

// End records err on span, if non-nil, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
