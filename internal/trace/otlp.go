// Package trace configures OpenTelemetry tracing for the amphibians browser.
package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Provider wraps the SDK tracer provider installed as the global one.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// Setup installs an OTLP/HTTP tracer provider when endpoint is set.
// Returns nil when endpoint is empty (disabled); a nil *Provider is safe to use.
func Setup(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local collectors; TLS endpoints need a proxy for now.
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "amphibians"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)

	return &Provider{provider: provider}, nil
}

// TracerProvider returns the installed provider, or the global one when
// tracing is disabled.
func (p *Provider) TracerProvider() oteltrace.TracerProvider {
	if p == nil {
		return otel.GetTracerProvider()
	}
	return p.provider
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
