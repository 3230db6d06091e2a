package bridge

import (
	"fmt"
	"strings"

	"github.com/philipp01105/logfile/core"
)

// LogLevel is the host side severity.
type LogLevel int

const (
	Trace LogLevel = iota
	Debug
	Information
	Warning
	Error
	Critical
	// None disables logging for any configuration.
	None
)

var logLevelNames = [...]string{
	Trace:       "Trace",
	Debug:       "Debug",
	Information: "Information",
	Warning:     "Warning",
	Error:       "Error",
	Critical:    "Critical",
	None:        "None",
}

// String returns the name of the level
func (l LogLevel) String() string {
	if l >= Trace && l <= None {
		return logLevelNames[l]
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLogLevel parses a level name, ignoring case.
func ParseLogLevel(s string) (LogLevel, error) {
	for l, name := range logLevelNames {
		if strings.EqualFold(s, name) {
			return LogLevel(l), nil
		}
	}
	return None, fmt.Errorf("bridge: unknown log level %q", s)
}

// LevelMapper converts a host level into a backend level. It must be pure
// and return a *MappingError for levels it has no correspondence for.
type LevelMapper[L comparable] func(LogLevel) (L, error)

// StandardLevels maps Trace through Critical one to one onto core levels.
// None and unknown values fail.
func StandardLevels(l LogLevel) (core.Level, error) {
	switch l {
	case Trace:
		return core.TraceLevel, nil
	case Debug:
		return core.DebugLevel, nil
	case Information:
		return core.InfoLevel, nil
	case Warning:
		return core.WarnLevel, nil
	case Error:
		return core.ErrorLevel, nil
	case Critical:
		return core.CriticalLevel, nil
	default:
		return 0, &MappingError{Level: l}
	}
}
