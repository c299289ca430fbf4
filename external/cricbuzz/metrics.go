package cricbuzz

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type clientMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newClientMetrics() *clientMetrics {
	meter := otel.Meter("cricket-analytics/external/cricbuzz")

	requests, err := meter.Int64Counter(
		"cricbuzz.requests",
		metric.WithDescription("Upstream requests by operation and outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}
	duration, err := meter.Float64Histogram(
		"cricbuzz.request.duration",
		metric.WithDescription("Upstream request latency"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		otel.Handle(err)
	}

	return &clientMetrics{requests: requests, duration: duration}
}

func (m *clientMetrics) record(ctx context.Context, op, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	)
	if m.requests != nil {
		m.requests.Add(ctx, 1, attrs)
	}
	if m.duration != nil && elapsed > 0 {
		m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	}
}
