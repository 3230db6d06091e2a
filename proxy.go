package logfile

import (
	"github.com/philipp01105/logfile/core"
)

// Proxy is a named child of a Logfile or of another Proxy. It stamps its
// own hierarchy on entries and forwards them to the parent; filtering and
// routing happen in the root Logfile. A Proxy does not expose the filter
// rules of its root.
type Proxy struct {
	parent    Target
	hierarchy core.Hierarchy
}

func newProxy(parent Target, h core.Hierarchy) *Proxy {
	return &Proxy{parent: parent, hierarchy: h}
}

// Hierarchy returns the node chain from the root logfile to this proxy.
func (p *Proxy) Hierarchy() core.Hierarchy {
	return p.hierarchy
}

// Proxy returns a further child node named name.
func (p *Proxy) Proxy(name string) *Proxy {
	return newProxy(p, p.hierarchy.Child(name))
}

// New starts an event at level tagged with this proxy's hierarchy.
func (p *Proxy) New(level core.Level) *Event {
	return newEvent(p, p.hierarchy, level)
}

// Log is shorthand for New(level).Msg(msg).Fields(fields...).Log().
func (p *Proxy) Log(level core.Level, msg string, fields ...core.Field) error {
	return p.New(level).Msg(msg).Fields(fields...).Log()
}

// Submit forwards entry to the parent, tagging it first if untagged.
func (p *Proxy) Submit(entry *core.Entry) error {
	if entry == nil {
		return nil
	}
	if len(entry.Hierarchy) == 0 {
		entry.Hierarchy = p.hierarchy
	}
	return p.parent.Submit(entry)
}
