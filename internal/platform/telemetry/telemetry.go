// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development) and OTLP/HTTP (production) exporters.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "my-service", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization:
//
//	mp, err := telemetry.InitMeter(ctx, "my-service", telemetry.ExporterStdout, "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp, "my-service")
//	metrics.ShutdownPhaseDuration.Record(ctx, d.Seconds(), ...)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// ScopeName is the instrumentation scope for tracers and meters owned by
// this module.
const ScopeName = "github.com/jsamuelsen11/graceful-shutdown"

// Attribute keys for metric labels.
var (
	AttrHTTPMethod    = attribute.Key("http.method")
	AttrHTTPStatus    = attribute.Key("http.status_code")
	AttrResult        = attribute.Key("result")
	AttrShutdownPhase = attribute.Key("shutdown.phase")
	AttrInterrupted   = attribute.Key("shutdown.interrupted")
	AttrServiceName   = attribute.Key("service.name")
)

// Shutdown phase attribute values.
const (
	PhaseDrain = "drain"
	PhaseClose = "close"
)

var errEmptyEndpoint = errors.New("endpoint must not be empty for otlp exporter")

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter

	// ShutdownPhaseDuration records the drain wait and the resource close,
	// labelled with AttrShutdownPhase.
	ShutdownPhaseDuration metric.Float64Histogram

	// ReadinessBroadcastTotal counts controllers marked not ready.
	ReadinessBroadcastTotal metric.Int64Counter

	service attribute.KeyValue
}

// ServiceAttr returns the service name attribute attached to every
// measurement.
func (m *Metrics) ServiceAttr() attribute.KeyValue {
	return m.service
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: "otlp" uses OTLP/HTTP
// with the given endpoint and "stdout" uses a pretty-printed stdout exporter
// for development. Any other value is an error.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// The exporter parameter selects the metric exporter with the same rules as
// [InitTracer].
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider. The meter is scoped to the module path.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(ScopeName)

	serverDuration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	serverTotal, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	phaseDuration, err := meter.Float64Histogram(
		"shutdown.phase.duration",
		metric.WithDescription("Duration of each graceful shutdown phase"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shutdown.phase.duration: %w", err)
	}

	broadcastTotal, err := meter.Int64Counter(
		"readiness.broadcast.total",
		metric.WithDescription("Readiness controllers marked not ready during shutdown"),
		metric.WithUnit("{controller}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating readiness.broadcast.total: %w", err)
	}

	return &Metrics{
		ServerRequestDuration:   serverDuration,
		ServerRequestTotal:      serverTotal,
		ShutdownPhaseDuration:   phaseDuration,
		ReadinessBroadcastTotal: broadcastTotal,
		service:                 AttrServiceName.String(serviceName),
	}, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errEmptyEndpoint
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errEmptyEndpoint
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New()
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

// isHTTPS returns true if the endpoint URL uses the https scheme.
func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
