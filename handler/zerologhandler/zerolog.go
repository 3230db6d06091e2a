// Package zerologhandler provides a router that forwards entries into a
// zerolog.Logger. The entry's own timestamp is written under
// zerolog.TimestampFieldName, so the target logger should not add one.
package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/logfile/core"
)

// Handler forwards entries to a zerolog logger.
type Handler struct {
	logger zerolog.Logger
}

// New creates a Handler writing to l.
func New(l zerolog.Logger) *Handler {
	return &Handler{logger: l}
}

// Level converts a logfile level to the matching zerolog level.
// Critical maps to zerolog's fatal level; Handle never exits the process.
func Level(l core.Level) zerolog.Level {
	switch l {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

// Handle writes the entry. WithLevel does not terminate the program for
// fatal entries, unlike Logger.Fatal.
func (h *Handler) Handle(entry *core.Entry) error {
	e := h.logger.WithLevel(Level(entry.Level))
	if e == nil {
		return nil
	}
	if !entry.Time.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, entry.Time)
	}
	if entry.EventID != nil && !entry.EventID.IsZero() {
		e = e.Strs("event_texts", entry.EventID.Texts).Ints("event_codes", entry.EventID.Codes)
	}
	if entry.Exception != nil {
		e = e.AnErr("exception", entry.Exception)
	}
	if len(entry.Hierarchy) > 0 {
		e = e.Stringer("hierarchy", entry.Hierarchy)
	}
	for _, f := range entry.Fields {
		switch f.Type {
		case core.StringType, core.ErrorType:
			e = e.Str(f.Key, f.Str)
		case core.IntType, core.Int64Type:
			e = e.Int64(f.Key, f.Int64)
		case core.Float64Type:
			e = e.Float64(f.Key, f.Float64)
		case core.BoolType:
			e = e.Bool(f.Key, f.Int64 == 1)
		default:
			e = e.Interface(f.Key, f.Value())
		}
	}
	e.Msg(entry.Message)
	return nil
}

// Close is a no-op; the zerolog writer is owned by the caller.
func (h *Handler) Close() error {
	return nil
}
