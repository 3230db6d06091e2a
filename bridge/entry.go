package bridge

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/logfile/core"
)

const (
	// BridgeEventText heads the text chain of every event id built here.
	BridgeEventText = "Bridge"
	// BridgeEventCode heads the code chain of every event id built here.
	BridgeEventCode = -10
)

// EventID identifies a host event. The zero value is the default id and is
// not attached to entries.
type EventID struct {
	ID   int
	Name string
}

// IsZero reports whether id is the default id.
func (id EventID) IsZero() bool {
	return id == EventID{}
}

// Formatter renders a state value, and optionally the exception, as the
// message text.
type Formatter func(state any, err error) (string, error)

// DefaultFormatter renders state with fmt.Sprint and ignores err.
func DefaultFormatter(state any, _ error) (string, error) {
	return fmt.Sprint(state), nil
}

// FieldSource is implemented by state values that carry structured fields.
type FieldSource interface {
	LogFields() []core.Field
}

// Message is a ready made state value: a text plus structured fields.
type Message struct {
	Text   string
	Fields []core.Field
}

func (m Message) String() string { return m.Text }

// LogFields implements FieldSource.
func (m Message) LogFields() []core.Field { return m.Fields }

// Entry is what the bridge hands to a Backend. It must not be modified
// after submission.
type Entry[L comparable] struct {
	Time       time.Time
	Level      L
	Message    string
	HasMessage bool
	Exception  error
	EventID    *core.EventID
	Hierarchy  core.Hierarchy
	Fields     []core.Field
}

// build creates the entry for one Log call. A failing formatter aborts the
// call with a *FormatterError.
func (a *Adapter[L]) build(level L, id EventID, state any, err error, format Formatter) (Entry[L], error) {
	entry := Entry[L]{
		Time:      time.Now(),
		Level:     level,
		Exception: err,
		Hierarchy: a.backend.Hierarchy(),
	}

	if !id.IsZero() {
		eid := a.eventID(id)
		entry.EventID = &eid
	}

	if state != nil {
		msg, ferr := formatState(format, state, err)
		if ferr != nil {
			return Entry[L]{}, &FormatterError{Category: a.category, Err: ferr}
		}
		entry.Message = msg
		entry.HasMessage = true

		if fs, ok := state.(FieldSource); ok {
			entry.Fields = fs.LogFields()
		}
	}

	return entry, nil
}

func (a *Adapter[L]) eventID(id EventID) core.EventID {
	texts := make([]string, 1, 3)
	texts[0] = BridgeEventText
	if strings.TrimSpace(a.category) != "" {
		texts = append(texts, a.category)
	}
	if strings.TrimSpace(id.Name) != "" {
		texts = append(texts, id.Name)
	}
	return core.NewEventID(texts, []int{BridgeEventCode, id.ID})
}

func formatState(format Formatter, state any, err error) (msg string, ferr error) {
	if format == nil {
		format = DefaultFormatter
	}
	defer func() {
		if r := recover(); r != nil {
			ferr = panicError(r)
		}
	}()
	return format(state, err)
}
