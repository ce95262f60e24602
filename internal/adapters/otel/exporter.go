package otel

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

const (
	serviceName    = "policyplot"
	serviceVersion = "1.0.0"
)

type observation struct {
	mean  float64
	std   float64
	attrs attribute.Set
}

// Exporter exports rendered chart values to an OTEL Collector.
// Bar values are published as gauges and collected on the next reader cycle or on Close.
type Exporter struct {
	provider    *sdkmetric.MeterProvider
	meter       metric.Meter
	chartsTotal metric.Int64Counter
	meanGauge   metric.Float64ObservableGauge
	stdGauge    metric.Float64ObservableGauge

	mu           sync.Mutex
	observations []observation
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newExporter(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}
	return e, nil
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	e := &Exporter{
		provider: provider,
		meter:    provider.Meter(serviceName),
	}

	var err error
	e.chartsTotal, err = e.meter.Int64Counter(
		"policyplot_charts_rendered_total",
		metric.WithDescription("Total charts rendered"),
		metric.WithUnit("{chart}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating charts counter: %w", err)
	}

	e.meanGauge, err = e.meter.Float64ObservableGauge(
		"policyplot_policy_metric_mean",
		metric.WithDescription("Mean value of a metric for a policy, as plotted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mean gauge: %w", err)
	}

	e.stdGauge, err = e.meter.Float64ObservableGauge(
		"policyplot_policy_metric_std",
		metric.WithDescription("Standard deviation of a metric for a policy, as plotted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating std gauge: %w", err)
	}

	_, err = e.meter.RegisterCallback(e.observe, e.meanGauge, e.stdGauge)
	if err != nil {
		return nil, fmt.Errorf("registering gauge callback: %w", err)
	}

	return e, nil
}

func (e *Exporter) observe(_ context.Context, o metric.Observer) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, obs := range e.observations {
		opt := metric.WithAttributeSet(obs.attrs)
		o.ObserveFloat64(e.meanGauge, obs.mean, opt)
		o.ObserveFloat64(e.stdGauge, obs.std, opt)
	}
	return nil
}

// ExportChart records every bar of chart under the given run.
func (e *Exporter) ExportChart(ctx context.Context, runID string, chart domain.ChartData) error {
	e.mu.Lock()
	for _, bar := range chart.Bars {
		e.observations = append(e.observations, observation{
			mean: bar.Height,
			std:  bar.ErrorHi,
			attrs: attribute.NewSet(
				attribute.String("run_id", runID),
				attribute.String("metric", chart.Metric),
				attribute.String("policy", bar.Label),
			),
		})
	}
	e.mu.Unlock()

	e.chartsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("metric", chart.Metric)))
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
