package secret

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// resolveMetrics records resolution telemetry. The only attribute is
// the hint scheme: variable names and paths would be unbounded
// cardinality and are metadata callers may still consider sensitive.
type resolveMetrics struct {
	total    metric.Int64Counter
	errors   metric.Int64Counter
	duration metric.Float64Histogram
}

func newResolveMetrics(meter metric.Meter) (*resolveMetrics, error) {
	total, err := meter.Int64Counter(
		"secret.resolve.total",
		metric.WithDescription("Total number of hint resolutions"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errCount, err := meter.Int64Counter(
		"secret.resolve.errors",
		metric.WithDescription("Total number of failed hint resolutions"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"secret.resolve.duration_ms",
		metric.WithDescription("Hint resolution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &resolveMetrics{
		total:    total,
		errors:   errCount,
		duration: duration,
	}, nil
}

// record is nil-safe so the zero Resolver pays nothing.
func (m *resolveMetrics) record(ctx context.Context, scheme string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}

	opt := metric.WithAttributes(attribute.String("hint.scheme", scheme))

	m.total.Add(ctx, 1, opt)
	if err != nil {
		m.errors.Add(ctx, 1, opt)
	}
	m.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), opt)
}
