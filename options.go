package logfile

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/philipp01105/logfile/core"
)

type options struct {
	name          string
	meterProvider metric.MeterProvider
	onError       func(error)
	now           func() time.Time
}

func defaultOptions() *options {
	return &options{
		name:          "logfile",
		meterProvider: otel.GetMeterProvider(),
		now:           time.Now,
	}
}

// Option configures a Logfile.
type Option func(*options)

// WithName sets the name of the root hierarchy node (default "logfile").
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithMeterProvider sets the MeterProvider used for the logfile's counters
// (default: the global provider).
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithOnError registers a callback for router failures. The callback must
// not log to the same Logfile.
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// WithCoarseClock stamps entries from core.CoarseNow instead of time.Now.
func WithCoarseClock() Option {
	return func(o *options) {
		core.StartCoarseClock()
		o.now = core.CoarseNow
	}
}
