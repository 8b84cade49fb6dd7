// Package telemetry builds the tracer provider handed to the search client.
// Nothing here registers global state; callers pass the provider explicitly.
package telemetry

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const DefaultServiceName = "mediasearch"

type Options struct {
	// ExporterEndpoint is an OTLP/HTTP collector, "host:port" or a full URL.
	// Empty disables exporting.
	ExporterEndpoint string
	ServiceName      string
}

// Provider owns the tracer provider and its shutdown.
type Provider struct {
	tp       trace.TracerProvider
	flush    func(context.Context) error
	shutdown func(context.Context) error
}

func (p *Provider) TracerProvider() trace.TracerProvider { return p.tp }

func (p *Provider) Enabled() bool {
	_, isNoop := p.tp.(noop.TracerProvider)
	return !isNoop
}

// Flush exports all ended spans still buffered.
func (p *Provider) Flush(ctx context.Context) error {
	if p.flush == nil {
		return nil
	}
	return p.flush(ctx)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	if p.shutdown == nil {
		return nil
	}
	return p.shutdown(ctx)
}

func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	endpoint := strings.TrimSpace(opts.ExporterEndpoint)
	if endpoint == "" {
		return &Provider{tp: noop.NewTracerProvider()}, nil
	}
	var exOpts []otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		exOpts = append(exOpts, otlptracehttp.WithEndpointURL(endpoint))
	} else {
		exOpts = append(exOpts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "create otlp exporter")
	}
	return NewProviderWithExporter(exporter, opts.ServiceName), nil
}

// NewProviderWithExporter wires an arbitrary span exporter, always sampling.
func NewProviderWithExporter(exporter sdktrace.SpanExporter, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
	return &Provider{tp: tp, flush: tp.ForceFlush, shutdown: tp.Shutdown}
}
