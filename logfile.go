package logfile

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/logfile/core"
)

// ErrClosed is returned by Submit and Reconfigure after Close.
var ErrClosed = errors.New("logfile: closed")

// Target is implemented by Logfile and Proxy: anything that can create
// events and accept entries on behalf of a hierarchy node.
type Target interface {
	// New starts an event at the given level
	New(level core.Level) *Event
	// Submit routes a finished entry
	Submit(entry *core.Entry) error
	// Hierarchy returns the node chain stamped on entries from this target
	Hierarchy() core.Hierarchy
}

// Logfile filters entries by level and routes them to its routers.
type Logfile struct {
	config    atomic.Pointer[Config]
	hierarchy core.Hierarchy
	metrics   *metrics
	onError   func(error)
	now       func() time.Time
	closed    atomic.Bool
}

// New creates a Logfile with the given configuration.
func New(cfg Config, opts ...Option) (*Logfile, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	m, err := newMetrics(o.meterProvider, o.name)
	if err != nil {
		return nil, err
	}

	lf := &Logfile{
		hierarchy: core.NewHierarchy(o.name),
		metrics:   m,
		onError:   o.onError,
		now:       o.now,
	}
	c := cfg.clone()
	lf.config.Store(&c)
	return lf, nil
}

// Config returns a copy of the active configuration
func (l *Logfile) Config() Config {
	return l.config.Load().clone()
}

// Reconfigure atomically replaces the active configuration and returns the
// previous one. Routers of the previous configuration are not closed; the
// caller owns them.
func (l *Logfile) Reconfigure(cfg Config) (Config, error) {
	if l.closed.Load() {
		return Config{}, ErrClosed
	}
	c := cfg.clone()
	return *l.config.Swap(&c), nil
}

// SetFilters atomically replaces the filter rules, keeping the routers.
func (l *Logfile) SetFilters(rules ...core.FilterRule[core.Level]) {
	for {
		old := l.config.Load()
		c := Config{Routers: old.Routers, Filters: rules}.clone()
		if l.config.CompareAndSwap(old, &c) {
			return
		}
	}
}

// FilterRules returns a copy of the active level filter rules.
func (l *Logfile) FilterRules() []core.FilterRule[core.Level] {
	return l.config.Load().clone().Filters
}

// Enabled reports whether entries at level pass every filter rule.
func (l *Logfile) Enabled(level core.Level) bool {
	return core.AdmitsAll(l.config.Load().Filters, level)
}

// Hierarchy returns the root node chain of the logfile.
func (l *Logfile) Hierarchy() core.Hierarchy {
	return l.hierarchy
}

// New starts an event at level.
func (l *Logfile) New(level core.Level) *Event {
	return newEvent(l, l.hierarchy, level)
}

// Log is shorthand for New(level).Msg(msg).Fields(fields...).Log().
func (l *Logfile) Log(level core.Level, msg string, fields ...core.Field) error {
	return l.New(level).Msg(msg).Fields(fields...).Log()
}

// Proxy returns a child node named name that forwards to l.
func (l *Logfile) Proxy(name string) *Proxy {
	return newProxy(l, l.hierarchy.Child(name))
}

// Submit checks entry against the filter rules and hands it to every
// router. Entries without a time or hierarchy are stamped. A filtered
// entry is not an error. Router failures are combined into the returned
// error.
func (l *Logfile) Submit(entry *core.Entry) error {
	if entry == nil {
		return nil
	}
	if l.closed.Load() {
		return ErrClosed
	}

	cfg := l.config.Load()
	if !core.AdmitsAll(cfg.Filters, entry.Level) {
		l.metrics.recordFiltered(entry.Level)
		return nil
	}

	if entry.Time.IsZero() {
		entry.Time = l.now()
	}
	if len(entry.Hierarchy) == 0 {
		entry.Hierarchy = l.hierarchy
	}

	l.metrics.recordSubmitted(entry.Level)

	var errs error
	for _, r := range cfg.Routers {
		if err := r.Handle(entry); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		l.metrics.recordFailed(entry.Level)
		errs = fmt.Errorf("logfile: route %s entry: %w", entry.Level, errs)
		if l.onError != nil {
			l.onError(errs)
		}
	}
	return errs
}

// Close closes every router of the active configuration. Subsequent calls
// are no-ops.
func (l *Logfile) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}
	var errs error
	for _, r := range l.config.Load().Routers {
		errs = multierr.Append(errs, r.Close())
	}
	return errs
}
