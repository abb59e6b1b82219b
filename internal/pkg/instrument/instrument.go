// Package instrument wires OpenTelemetry tracing, metrics and log export,
// plus the application-wide slog handler.
package instrument

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Options configures telemetry export.
type Options struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Instrument owns the telemetry providers and shuts them down together.
type Instrument struct {
	shutdowns []func(context.Context) error
	logger    *sdklog.LoggerProvider
}

// New initializes the OTel SDK. When disabled it returns an empty Instrument
// whose Shutdown is a no-op and leaves the global no-op providers in place.
func New(ctx context.Context, opts Options) (*Instrument, error) {
	inst := &Instrument{}
	if !opts.Enabled {
		return inst, nil
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(opts.ServiceName),
		semconv.ServiceVersion(opts.ServiceVersion),
	))
	if err != nil {
		return nil, err
	}

	traceExp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(opts.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	inst.shutdowns = append(inst.shutdowns, tp.Shutdown)

	metricExp, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(opts.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp,
			sdkmetric.WithInterval(30*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	inst.shutdowns = append(inst.shutdowns, mp.Shutdown)

	logExp, err := otlploggrpc.New(ctx,
		otlploggrpc.WithEndpoint(opts.Endpoint),
		otlploggrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExp)),
		sdklog.WithResource(res),
	)
	inst.logger = lp
	inst.shutdowns = append(inst.shutdowns, lp.Shutdown)

	return inst, nil
}

// Shutdown flushes and stops the providers in reverse order.
func (i *Instrument) Shutdown(ctx context.Context) error {
	var errs error
	for j := len(i.shutdowns) - 1; j >= 0; j-- {
		errs = errors.Join(errs, i.shutdowns[j](ctx))
	}

	return errs
}
