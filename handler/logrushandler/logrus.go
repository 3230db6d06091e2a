// Package logrushandler provides a router that forwards entries into a
// *logrus.Logger.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logfile/core"
)

// Handler forwards entries to a logrus logger.
type Handler struct {
	logger *logrus.Logger
}

// New creates a Handler writing to l, or to logrus.StandardLogger() if l is nil.
func New(l *logrus.Logger) *Handler {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Handler{logger: l}
}

// Level converts a logfile level to the matching logrus level.
// Critical maps to logrus' fatal level; Handle never calls the exit func.
func Level(l core.Level) logrus.Level {
	switch l {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	default:
		return logrus.FatalLevel
	}
}

// Handle writes the entry through Entry.Log, which does not exit for
// fatal entries.
func (h *Handler) Handle(entry *core.Entry) error {
	level := Level(entry.Level)
	if !h.logger.IsLevelEnabled(level) {
		return nil
	}

	fields := make(logrus.Fields, len(entry.Fields)+4)
	for _, f := range entry.Fields {
		fields[f.Key] = f.Value()
	}
	if entry.EventID != nil && !entry.EventID.IsZero() {
		fields["event"] = entry.EventID.String()
	}
	if len(entry.Hierarchy) > 0 {
		fields["hierarchy"] = entry.Hierarchy.String()
	}
	if entry.Exception != nil {
		fields[logrus.ErrorKey] = entry.Exception
	}

	e := h.logger.WithFields(fields)
	if !entry.Time.IsZero() {
		e = e.WithTime(entry.Time)
	}
	e.Log(level, entry.Message)
	return nil
}

// Close is a no-op; the logrus output is owned by the caller.
func (h *Handler) Close() error {
	return nil
}
