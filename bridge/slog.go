package bridge

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/philipp01105/logfile/core"
)

// LevelCritical is the slog level mapped to Critical.
const LevelCritical = slog.Level(12)

// SlogHandler is a slog.Handler that logs through a bridge Logger. Error
// valued attributes named "err", "error" or "exception" become the entry's
// exception; a valid span in the context adds trace_id and span_id fields.
type SlogHandler struct {
	logger Logger
	attrs  []core.Field
	err    error
	group  string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a slog.Handler over logger.
func NewSlogHandler(logger Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// FromSlogLevel converts a slog level into a host level.
func FromSlogLevel(level slog.Level) LogLevel {
	switch {
	case level < slog.LevelDebug:
		return Trace
	case level < slog.LevelInfo:
		return Debug
	case level < slog.LevelWarn:
		return Information
	case level < slog.LevelError:
		return Warning
	case level < LevelCritical:
		return Error
	default:
		return Critical
	}
}

// Enabled reports whether the underlying Logger is enabled for level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsEnabled(FromSlogLevel(level))
}

// Handle converts the record into a Message and logs it.
func (h *SlogHandler) Handle(ctx context.Context, r slog.Record) error {
	fields := make([]core.Field, len(h.attrs), len(h.attrs)+r.NumAttrs()+2)
	copy(fields, h.attrs)
	exc := h.err

	r.Attrs(func(a slog.Attr) bool {
		fields, exc = h.appendAttr(fields, exc, h.group, a)
		return true
	})

	if ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				core.String("trace_id", sc.TraceID().String()),
				core.String("span_id", sc.SpanID().String()))
		}
	}

	h.logger.Log(FromSlogLevel(r.Level), EventID{}, Message{Text: r.Message, Fields: fields}, exc, DefaultFormatter)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = make([]core.Field, len(h.attrs), len(h.attrs)+len(attrs))
	copy(nh.attrs, h.attrs)
	for _, a := range attrs {
		nh.attrs, nh.err = h.appendAttr(nh.attrs, nh.err, h.group, a)
	}
	return &nh
}

// WithGroup returns a new SlogHandler whose attribute keys are prefixed
// with name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = joinKey(h.group, name)
	return &nh
}

func (h *SlogHandler) appendAttr(fields []core.Field, exc error, group string, a slog.Attr) ([]core.Field, error) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return fields, exc
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			fields, exc = h.appendAttr(fields, exc, prefix, ga)
		}
		return fields, exc
	}

	if exc == nil && group == "" && isExceptionKey(a.Key) {
		if err, ok := a.Value.Any().(error); ok && err != nil {
			return fields, err
		}
	}

	return append(fields, slogField(joinKey(group, a.Key), a.Value)), exc
}

func slogField(key string, v slog.Value) core.Field {
	switch v.Kind() {
	case slog.KindString:
		return core.String(key, v.String())
	case slog.KindInt64:
		return core.Int64(key, v.Int64())
	case slog.KindUint64:
		return core.Any(key, v.Uint64())
	case slog.KindFloat64:
		return core.Float64(key, v.Float64())
	case slog.KindBool:
		return core.Bool(key, v.Bool())
	case slog.KindTime:
		return core.Time(key, v.Time())
	case slog.KindDuration:
		return core.Duration(key, v.Duration())
	default:
		return fieldOf(key, v.Any())
	}
}

func isExceptionKey(key string) bool {
	switch key {
	case "err", "error", "exception":
		return true
	}
	return false
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
