// internal/common/observability/metrics.go
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability owns the OTel meter provider backed by the Prometheus
// exporter. Instruments cover evaluation throughput, latency and the score
// distribution.
type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	evalCounter    otelmetric.Int64Counter
	evalDuration   otelmetric.Float64Histogram
	scoreHistogram otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	evalCounter, _ := meter.Int64Counter(
		"evaluations.processed",
		otelmetric.WithDescription("Number of risk evaluations processed"),
	)

	evalDuration, _ := meter.Float64Histogram(
		"evaluations.duration",
		otelmetric.WithDescription("Risk evaluation processing duration"),
		otelmetric.WithUnit("ms"),
	)

	scoreHistogram, _ := meter.Float64Histogram(
		"evaluations.risk_score",
		otelmetric.WithDescription("Distribution of produced risk scores"),
	)

	return &Observability{
		meterProvider:  provider,
		meter:          meter,
		evalCounter:    evalCounter,
		evalDuration:   evalDuration,
		scoreHistogram: scoreHistogram,
	}
}

func (o *Observability) RecordEvaluation(ctx context.Context, status string) {
	if o.evalCounter != nil {
		o.evalCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordEvaluationDuration(ctx context.Context, duration time.Duration, status string) {
	if o.evalDuration != nil {
		o.evalDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordRiskScore(ctx context.Context, score float64, level string) {
	if o.scoreHistogram != nil {
		o.scoreHistogram.Record(ctx, score, otelmetric.WithAttributes(
			attribute.String("risk_level", level),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
