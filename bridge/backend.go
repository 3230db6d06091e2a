package bridge

import (
	"github.com/philipp01105/logfile"
	"github.com/philipp01105/logfile/core"
)

// Backend accepts entries produced by the bridge. Implementations must be
// safe for concurrent use; the bridge borrows a Backend and never closes it.
type Backend[L comparable] interface {
	// Submit hands over a finished entry
	Submit(entry Entry[L]) error
	// Hierarchy identifies the backend instance entries are stamped with
	Hierarchy() core.Hierarchy
}

// RuleSource is implemented by backends whose level filter rules can be
// inspected. Backends without it are treated as admitting every level.
type RuleSource[L comparable] interface {
	FilterRules() []core.FilterRule[L]
}

// observable reports whether level passes every rule. It is vacuously true
// without rules.
func observable[L comparable](level L, rules []core.FilterRule[L]) bool {
	for _, r := range rules {
		if !r.Admits(level) {
			return false
		}
	}
	return true
}

// logfileBackend submits entries to a logfile Target.
type logfileBackend struct {
	target logfile.Target
}

func (b logfileBackend) Submit(e Entry[core.Level]) error {
	return b.target.Submit(&core.Entry{
		Time:      e.Time,
		Level:     e.Level,
		Message:   e.Message,
		Fields:    e.Fields,
		Exception: e.Exception,
		EventID:   e.EventID,
		Hierarchy: e.Hierarchy,
	})
}

func (b logfileBackend) Hierarchy() core.Hierarchy {
	return b.target.Hierarchy()
}

// introspectableBackend additionally exposes the filter rules of a root
// Logfile.
type introspectableBackend struct {
	logfileBackend
	lf *logfile.Logfile
}

func (b introspectableBackend) FilterRules() []core.FilterRule[core.Level] {
	return b.lf.FilterRules()
}

// StandardBackend wraps a logfile Target. A *logfile.Logfile exposes its
// filter rules; any other target, such as a *logfile.Proxy, does not, and
// loggers over it treat every mapped level as enabled.
func StandardBackend(target logfile.Target) Backend[core.Level] {
	if lf, ok := target.(*logfile.Logfile); ok {
		return introspectableBackend{logfileBackend: logfileBackend{target: lf}, lf: lf}
	}
	return logfileBackend{target: target}
}
