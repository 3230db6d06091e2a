package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/logfile/core"
	"github.com/philipp01105/logfile/handler"
)

// MultiHandler sends log entries to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]handler.Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handlers returns the child handlers.
func (m *MultiHandler) Handlers() []handler.Handler {
	return append([]handler.Handler(nil), m.handlers...)
}

// Handle sends the entry to every handler. A failing handler does not stop
// the others; all failures are combined into the returned error.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
