package app

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ServiceVersion is reported on every exported span.
const ServiceVersion = "1.0.0"

// Telemetry owns the tracer provider contract invocations are traced with.
type Telemetry struct {
	provider trace.TracerProvider
	sdk      *tracesdk.TracerProvider
}

// InitTelemetry builds the tracer provider described by cfg. Spans are
// handed to exporters in batches; with telemetry disabled a no-op provider
// is returned and exporters are ignored.
func InitTelemetry(cfg TelemetryConfig, passphrase string, exporters ...tracesdk.SpanExporter) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{provider: noop.NewTracerProvider()}, nil
	}

	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", ServiceVersion),
			attribute.String("network.passphrase", passphrase),
		),
	)
	if err != nil {
		return nil, err
	}

	opts := []tracesdk.TracerProviderOption{
		tracesdk.WithResource(res),
		tracesdk.WithSampler(tracesdk.ParentBased(
			tracesdk.TraceIDRatioBased(cfg.SampleRate),
		)),
	}
	for _, exp := range exporters {
		opts = append(opts, tracesdk.WithBatcher(exp))
	}
	tp := tracesdk.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	return &Telemetry{provider: tp, sdk: tp}, nil
}

// TracerProvider returns the provider spans are created from.
func (t *Telemetry) TracerProvider() trace.TracerProvider {
	return t.provider
}

// Flush exports every span ended so far.
func (t *Telemetry) Flush(ctx context.Context) error {
	if t.sdk == nil {
		return nil
	}
	return t.sdk.ForceFlush(ctx)
}

// Shutdown flushes pending spans and stops the exporters.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.sdk == nil {
		return nil
	}
	return t.sdk.Shutdown(ctx)
}
