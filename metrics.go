package logfile

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/philipp01105/logfile/core"
)

const (
	instrumentationName = "github.com/philipp01105/logfile"

	metricSubmitted = "logfile.entries.submitted"
	metricFiltered  = "logfile.entries.filtered"
	metricFailed    = "logfile.router.failures"
)

type metrics struct {
	submitted metric.Int64Counter
	filtered  metric.Int64Counter
	failed    metric.Int64Counter
	attrs     [len(core.Levels)]metric.MeasurementOption
}

func newMetrics(mp metric.MeterProvider, name string) (*metrics, error) {
	meter := mp.Meter(instrumentationName)

	submitted, err := meter.Int64Counter(metricSubmitted,
		metric.WithDescription("entries admitted by the filter rules and routed"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, fmt.Errorf("logfile: create counter failed: %w", err)
	}
	filtered, err := meter.Int64Counter(metricFiltered,
		metric.WithDescription("entries rejected by the filter rules"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, fmt.Errorf("logfile: create counter failed: %w", err)
	}
	failed, err := meter.Int64Counter(metricFailed,
		metric.WithDescription("entries at least one router failed to handle"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, fmt.Errorf("logfile: create counter failed: %w", err)
	}

	m := &metrics{submitted: submitted, filtered: filtered, failed: failed}
	for _, l := range core.Levels {
		m.attrs[l] = metric.WithAttributes(
			attribute.String("logfile", name),
			attribute.String("level", l.String()))
	}
	return m, nil
}

func (m *metrics) attr(l core.Level) metric.MeasurementOption {
	if l.Valid() {
		return m.attrs[l]
	}
	return metric.WithAttributes(attribute.String("level", l.String()))
}

func (m *metrics) recordSubmitted(l core.Level) {
	m.submitted.Add(context.Background(), 1, m.attr(l))
}

func (m *metrics) recordFiltered(l core.Level) {
	m.filtered.Add(context.Background(), 1, m.attr(l))
}

func (m *metrics) recordFailed(l core.Level) {
	m.failed.Add(context.Background(), 1, m.attr(l))
}

func noopMeterProvider() metric.MeterProvider {
	return noop.NewMeterProvider()
}
