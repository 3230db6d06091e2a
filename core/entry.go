package core

import (
	"time"
)

// Entry represents a log entry with all its metadata. An entry is not
// modified once it has been submitted to a logfile; routers that queue
// entries may therefore keep a reference after Handle returns.
type Entry struct {
	Time      time.Time
	Level     Level
	Message   string
	Fields    []Field
	Exception error
	EventID   *EventID
	Hierarchy Hierarchy
}

// Clone returns a copy of e whose slices do not alias e's.
func (e *Entry) Clone() *Entry {
	c := *e
	if e.Fields != nil {
		c.Fields = append(make([]Field, 0, len(e.Fields)), e.Fields...)
	}
	if e.EventID != nil {
		id := e.EventID.Clone()
		c.EventID = &id
	}
	c.Hierarchy = e.Hierarchy.Clone()
	return &c
}
