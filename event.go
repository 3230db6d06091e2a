package logfile

import (
	"fmt"

	"github.com/philipp01105/logfile/core"
)

// Event is a single entry under construction. It is not safe for
// concurrent use and must not be reused after Log.
type Event struct {
	target Target
	entry  core.Entry
}

func newEvent(target Target, h core.Hierarchy, level core.Level) *Event {
	return &Event{
		target: target,
		entry:  core.Entry{Level: level, Hierarchy: h},
	}
}

// Msg sets the message
func (e *Event) Msg(msg string) *Event {
	e.entry.Message = msg
	return e
}

// Msgf sets a formatted message
func (e *Event) Msgf(format string, args ...interface{}) *Event {
	e.entry.Message = fmt.Sprintf(format, args...)
	return e
}

// Exception attaches err
func (e *Event) Exception(err error) *Event {
	e.entry.Exception = err
	return e
}

// EventID attaches id. A zero id clears it.
func (e *Event) EventID(id core.EventID) *Event {
	if id.IsZero() {
		e.entry.EventID = nil
		return e
	}
	c := id.Clone()
	e.entry.EventID = &c
	return e
}

// Fields appends structured fields
func (e *Event) Fields(fields ...core.Field) *Event {
	e.entry.Fields = append(e.entry.Fields, fields...)
	return e
}

// Entry returns the entry built so far.
func (e *Event) Entry() *core.Entry {
	return &e.entry
}

// Log submits the event to its target.
func (e *Event) Log() error {
	return e.target.Submit(&e.entry)
}
