package bridge

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/philipp01105/logfile"
	"github.com/philipp01105/logfile/core"
)

// LoggerProvider is the host facing factory contract.
type LoggerProvider interface {
	// CreateLogger returns the Logger for category, creating it on first use.
	CreateLogger(category string) (Logger, error)
	// Close disposes the provider. Loggers already handed out keep working.
	Close() error
}

type options struct {
	onError func(error)
}

// Option configures a Provider or Adapter.
type Option func(*options)

// WithOnError registers a hook that receives every failure dropped by
// Log. The hook runs on the logging goroutine and must not log through the
// same bridge.
func WithOnError(fn func(error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Provider caches one Adapter per category over a shared Backend.
//
// Lookups of existing categories are lock free. Concurrent first requests
// for a category share a single construction. Creation and Close exclude
// each other, so no Adapter is created after Close returns.
type Provider[L comparable] struct {
	backend Backend[L]
	mapper  LevelMapper[L]
	opts    options

	loggers sync.Map // category -> *Adapter[L]
	group   singleflight.Group

	mu       sync.RWMutex
	disposed bool

	construct func(category string) *Adapter[L]
}

var _ LoggerProvider = (*Provider[int])(nil)

// NewProvider creates a Provider over backend. The backend is borrowed:
// closing the provider does not close it.
func NewProvider[L comparable](backend Backend[L], mapper LevelMapper[L], opts ...Option) (*Provider[L], error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if mapper == nil {
		return nil, ErrNilMapper
	}
	p := &Provider[L]{
		backend: backend,
		mapper:  mapper,
		opts:    applyOptions(opts),
	}
	p.construct = func(category string) *Adapter[L] {
		return newAdapter(p.backend, category, p.mapper, p.opts)
	}
	return p, nil
}

// NewStandardProvider creates a Provider over a Logfile or Proxy using
// StandardLevels.
func NewStandardProvider(target logfile.Target, opts ...Option) (*Provider[core.Level], error) {
	if target == nil {
		return nil, ErrNilBackend
	}
	return NewProvider(StandardBackend(target), StandardLevels, opts...)
}

// Backend returns the borrowed backend.
func (p *Provider[L]) Backend() Backend[L] {
	return p.backend
}

// Logger returns the Adapter for category, creating it on first use. It
// returns ErrDisposed once the provider is closed.
func (p *Provider[L]) Logger(category string) (*Adapter[L], error) {
	if a, ok := p.loggers.Load(category); ok {
		return a.(*Adapter[L]), nil
	}

	v, err, _ := p.group.Do(category, func() (any, error) {
		p.mu.RLock()
		defer p.mu.RUnlock()
		if p.disposed {
			return nil, ErrDisposed
		}
		if a, ok := p.loggers.Load(category); ok {
			return a, nil
		}
		a, _ := p.loggers.LoadOrStore(category, p.construct(category))
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Adapter[L]), nil
}

// CreateLogger implements LoggerProvider.
func (p *Provider[L]) CreateLogger(category string) (Logger, error) {
	a, err := p.Logger(category)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Close clears the cache and blocks further creation. It is idempotent.
func (p *Provider[L]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return nil
	}
	p.disposed = true
	p.loggers.Clear()
	return nil
}
