package bridge

import (
	"github.com/go-logr/logr"

	"github.com/philipp01105/logfile/core"
)

// logrSink is a logr.LogSink over a bridge Logger. V(0) logs at
// Information, V(1) at Debug and higher verbosity at Trace.
type logrSink struct {
	provider LoggerProvider
	logger   Logger
	category string
	values   []core.Field
}

var _ logr.LogSink = (*logrSink)(nil)

// NewLogr returns a logr.Logger for category. Names added with WithName
// are appended to the category with a dot and resolved through provider.
func NewLogr(provider LoggerProvider, category string) (logr.Logger, error) {
	l, err := provider.CreateLogger(category)
	if err != nil {
		return logr.Discard(), err
	}
	return logr.New(&logrSink{provider: provider, logger: l, category: category}), nil
}

func verbosityLevel(v int) LogLevel {
	switch {
	case v <= 0:
		return Information
	case v == 1:
		return Debug
	default:
		return Trace
	}
}

func (s *logrSink) Init(logr.RuntimeInfo) {}

func (s *logrSink) Enabled(level int) bool {
	return s.logger.IsEnabled(verbosityLevel(level))
}

func (s *logrSink) Info(level int, msg string, keysAndValues ...any) {
	s.logger.Log(verbosityLevel(level), EventID{}, s.message(msg, keysAndValues), nil, DefaultFormatter)
}

func (s *logrSink) Error(err error, msg string, keysAndValues ...any) {
	s.logger.Log(Error, EventID{}, s.message(msg, keysAndValues), err, DefaultFormatter)
}

func (s *logrSink) WithValues(keysAndValues ...any) logr.LogSink {
	ns := *s
	ns.values = append(append([]core.Field(nil), s.values...), fieldsOf(keysAndValues)...)
	return &ns
}

// WithName derives a child category. When the provider can no longer
// create loggers the child keeps logging under the current category.
func (s *logrSink) WithName(name string) logr.LogSink {
	ns := *s
	ns.category = joinKey(s.category, name)
	if l, err := s.provider.CreateLogger(ns.category); err == nil {
		ns.logger = l
	}
	return &ns
}

func (s *logrSink) message(msg string, kv []any) Message {
	fields := make([]core.Field, 0, len(s.values)+len(kv)/2)
	fields = append(fields, s.values...)
	fields = append(fields, fieldsOf(kv)...)
	return Message{Text: msg, Fields: fields}
}
