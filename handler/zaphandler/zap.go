// Package zaphandler provides a router that forwards entries into an
// existing *zap.Logger, so a logfile can feed a zap based pipeline.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logfile/core"
)

// Handler forwards entries to a zap logger.
type Handler struct {
	logger *zap.Logger
}

// New creates a Handler writing to l. A nil logger discards everything.
func New(l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{logger: l}
}

// Level converts a logfile level to the nearest zap level. zap has no
// trace level and its levels above error terminate the process, so
// Trace and Critical are folded into Debug and Error.
func Level(l core.Level) zapcore.Level {
	switch l {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// Handle writes the entry if the zap logger is enabled for its level.
func (h *Handler) Handle(entry *core.Entry) error {
	ce := h.logger.Check(Level(entry.Level), entry.Message)
	if ce == nil {
		return nil
	}
	if !entry.Time.IsZero() {
		ce.Time = entry.Time
	}
	ce.Write(Fields(entry)...)
	return nil
}

// Fields converts the entry's structured data to zap fields.
func Fields(entry *core.Entry) []zap.Field {
	fields := make([]zap.Field, 0, len(entry.Fields)+5)
	if entry.Level == core.TraceLevel || entry.Level == core.CriticalLevel {
		fields = append(fields, zap.Stringer("logfile_level", entry.Level))
	}
	if entry.EventID != nil && !entry.EventID.IsZero() {
		fields = append(fields,
			zap.Strings("event_texts", entry.EventID.Texts),
			zap.Ints("event_codes", entry.EventID.Codes))
	}
	if entry.Exception != nil {
		fields = append(fields, zap.NamedError("exception", entry.Exception))
	}
	if len(entry.Hierarchy) > 0 {
		fields = append(fields, zap.Stringer("hierarchy", entry.Hierarchy))
	}
	for _, f := range entry.Fields {
		fields = append(fields, field(f))
	}
	return fields
}

func field(f core.Field) zap.Field {
	switch f.Type {
	case core.StringType:
		return zap.String(f.Key, f.Str)
	case core.IntType, core.Int64Type:
		return zap.Int64(f.Key, f.Int64)
	case core.Float64Type:
		return zap.Float64(f.Key, f.Float64)
	case core.BoolType:
		return zap.Bool(f.Key, f.Int64 == 1)
	case core.TimeType, core.DurationType:
		return zap.Any(f.Key, f.Value())
	case core.ErrorType:
		return zap.String(f.Key, f.Str)
	default:
		return zap.Any(f.Key, f.Any)
	}
}

// Close flushes the zap logger.
func (h *Handler) Close() error {
	return h.logger.Sync()
}
