package bridge

import (
	"io"
)

// Logger is the host facing logging contract.
type Logger interface {
	// IsEnabled reports whether entries at level would be observed.
	IsEnabled(level LogLevel) bool
	// BeginScope starts a logical scope. Scopes carry no data here.
	BeginScope(state any) io.Closer
	// Log emits an entry. It never fails and never panics.
	Log(level LogLevel, id EventID, state any, err error, format Formatter)
}

type nopScope struct{}

func (nopScope) Close() error { return nil }

// Adapter is the Logger for one category over a borrowed Backend. It holds
// no mutable state and is safe for concurrent use.
type Adapter[L comparable] struct {
	backend  Backend[L]
	rules    RuleSource[L]
	category string
	mapper   LevelMapper[L]
	onError  func(error)
}

var _ Logger = (*Adapter[int])(nil)

// NewAdapter creates a Logger for category.
func NewAdapter[L comparable](backend Backend[L], category string, mapper LevelMapper[L], opts ...Option) (*Adapter[L], error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if mapper == nil {
		return nil, ErrNilMapper
	}
	o := applyOptions(opts)
	return newAdapter(backend, category, mapper, o), nil
}

func newAdapter[L comparable](backend Backend[L], category string, mapper LevelMapper[L], o options) *Adapter[L] {
	a := &Adapter[L]{
		backend:  backend,
		category: category,
		mapper:   mapper,
		onError:  o.onError,
	}
	a.rules, _ = backend.(RuleSource[L])
	return a
}

// Category returns the category name the adapter was created for.
func (a *Adapter[L]) Category() string {
	return a.category
}

// IsEnabled reports false for None and for levels the mapper rejects.
// Otherwise it evaluates the backend's filter rules, or reports true when
// the backend does not expose them.
func (a *Adapter[L]) IsEnabled(level LogLevel) bool {
	if level == None {
		return false
	}
	l, err := a.mapLevel(level)
	if err != nil {
		return false
	}
	if a.rules == nil {
		return true
	}
	return a.inspect(l)
}

// inspect evaluates the backend's rules. A backend failing to report its
// rules counts as not introspectable.
func (a *Adapter[L]) inspect(level L) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = true
		}
	}()
	return observable(level, a.rules.FilterRules())
}

// BeginScope returns a no-op scope.
func (a *Adapter[L]) BeginScope(any) io.Closer {
	return nopScope{}
}

// Log maps level, builds the entry and submits it. Failures of any step are
// dropped here and passed to the OnError hook if one is configured.
func (a *Adapter[L]) Log(level LogLevel, id EventID, state any, err error, format Formatter) {
	if failure := a.emit(level, id, state, err, format); failure != nil && a.onError != nil {
		a.onError(failure)
	}
}

func (a *Adapter[L]) emit(level LogLevel, id EventID, state any, err error, format Formatter) (failure error) {
	defer func() {
		if r := recover(); r != nil {
			failure = &SubmissionError{Category: a.category, Err: panicError(r)}
		}
	}()

	l, merr := a.mapLevel(level)
	if merr != nil {
		return merr
	}
	entry, berr := a.build(l, id, state, err, format)
	if berr != nil {
		return berr
	}
	if serr := a.backend.Submit(entry); serr != nil {
		return &SubmissionError{Category: a.category, Err: serr}
	}
	return nil
}

func (a *Adapter[L]) mapLevel(level LogLevel) (l L, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &MappingError{Level: level, Err: panicError(r)}
		}
	}()
	l, err = a.mapper(level)
	if err != nil {
		if _, ok := err.(*MappingError); !ok {
			err = &MappingError{Level: level, Err: err}
		}
	}
	return l, err
}
